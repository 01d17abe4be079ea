package rdb

import (
	"context"
	"testing"

	"github.com/zoneup/zoneup/domain/model"
)

func openTestDB(t *testing.T) *JournalRepository {
	t.Helper()
	db, err := OpenFromURL("sqlite::memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewJournalRepository(db)
}

func TestJournalRepositoryCreateList(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	entry := &model.JournalEntry{
		ZoneID:     "Z123",
		ZoneName:   "example.com.",
		Action:     model.ChangeActionUpsert,
		RecordName: "www.example.com.",
		RecordType: model.RecordTypeA,
		TTL:        300,
		Values:     []string{"192.0.2.1", "192.0.2.2"},
		ChangeID:   "C456",
		Status:     model.ChangeStatusInsync,
		Comment:    "test update",
	}
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.ID == "" {
		t.Error("Create did not assign an ID")
	}

	entries, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List returned %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.ZoneName != "example.com." || got.RecordType != model.RecordTypeA || got.TTL != 300 {
		t.Errorf("unexpected entry: %+v", got)
	}
	if got.Action != model.ChangeActionUpsert {
		t.Errorf("action = %s, want %s", got.Action, model.ChangeActionUpsert)
	}
	if len(got.Values) != 2 || got.Values[0] != "192.0.2.1" {
		t.Errorf("values not round-tripped: %v", got.Values)
	}
}

func TestJournalRepositoryListLimit(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, &model.JournalEntry{
			ZoneID:     "Z123",
			ZoneName:   "example.com.",
			RecordName: "www.example.com.",
			RecordType: model.RecordTypeA,
			TTL:        300,
			Values:     []string{"192.0.2.1"},
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	entries, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("List returned %d entries, want 3", len(entries))
	}
}

func TestOpenFromURLUnsupportedScheme(t *testing.T) {
	if _, err := OpenFromURL("postgres://localhost/db"); err == nil {
		t.Error("expected error for unsupported scheme")
	}
}
