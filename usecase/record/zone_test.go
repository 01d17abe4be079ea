package record

import (
	"context"
	"errors"
	"testing"

	"github.com/zoneup/zoneup/domain/model"
)

func TestResolveZoneSuffixClimbing(t *testing.T) {
	tests := []struct {
		name       string
		zones      []*model.Zone
		recordName string
		visibility model.ZoneVisibility
		wantID     string
		wantErr    error
	}{
		{
			name: "deep name climbs to nearest zone",
			zones: []*model.Zone{
				{ID: "Z-COM", Name: "com."},
				{ID: "Z-EXAMPLE", Name: "example.com."},
			},
			recordName: "a.b.c.example.com.",
			wantID:     "Z-EXAMPLE",
		},
		{
			name: "exact zone name match",
			zones: []*model.Zone{
				{ID: "Z-EXAMPLE", Name: "example.com."},
			},
			recordName: "example.com.",
			wantID:     "Z-EXAMPLE",
		},
		{
			name: "case differences are ignored",
			zones: []*model.Zone{
				{ID: "Z-EXAMPLE", Name: "Example.COM."},
			},
			recordName: "app.example.com.",
			wantID:     "Z-EXAMPLE",
		},
		{
			name: "prefer-public picks public among same-named zones",
			zones: []*model.Zone{
				{ID: "Z-PRIV", Name: "example.com.", Private: true},
				{ID: "Z-PUB", Name: "example.com."},
			},
			recordName: "app.example.com.",
			visibility: model.ZoneVisibilityPreferPublic,
			wantID:     "Z-PUB",
		},
		{
			name: "prefer-public falls back to a lone private zone",
			zones: []*model.Zone{
				{ID: "Z-PRIV", Name: "example.com.", Private: true},
			},
			recordName: "app.example.com.",
			visibility: model.ZoneVisibilityPreferPublic,
			wantID:     "Z-PRIV",
		},
		{
			name: "zero-value visibility behaves as prefer-public",
			zones: []*model.Zone{
				{ID: "Z-PRIV", Name: "example.com.", Private: true},
			},
			recordName: "app.example.com.",
			wantID:     "Z-PRIV",
		},
		{
			name: "strict public skips private zone and keeps climbing",
			zones: []*model.Zone{
				{ID: "Z-PRIV", Name: "sub.example.com.", Private: true},
				{ID: "Z-PUB", Name: "example.com."},
			},
			recordName: "app.sub.example.com.",
			visibility: model.ZoneVisibilityPublic,
			wantID:     "Z-PUB",
		},
		{
			name: "strict private selects private zone",
			zones: []*model.Zone{
				{ID: "Z-PUB", Name: "example.com."},
				{ID: "Z-PRIV", Name: "example.com.", Private: true},
			},
			recordName: "app.example.com.",
			visibility: model.ZoneVisibilityPrivate,
			wantID:     "Z-PRIV",
		},
		{
			name: "strict private with only public zones fails",
			zones: []*model.Zone{
				{ID: "Z-PUB", Name: "example.com."},
			},
			recordName: "app.example.com.",
			visibility: model.ZoneVisibilityPrivate,
			wantErr:    model.ErrZoneNotFound,
		},
		{
			name:       "no zone at any suffix",
			zones:      []*model.Zone{{ID: "Z-OTHER", Name: "example.org."}},
			recordName: "app.example.com.",
			wantErr:    model.ErrZoneNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &UseCase{Port: &fakePort{zones: tt.zones}}
			zone, err := u.resolveZone(context.Background(), &UpdateInput{ZoneVisibility: tt.visibility}, tt.recordName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolveZone() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveZone() error = %v", err)
			}
			if zone.ID != tt.wantID {
				t.Errorf("resolveZone() = %s, want %s", zone.ID, tt.wantID)
			}
		})
	}
}

func TestResolveZoneTruncatedListingIsFatal(t *testing.T) {
	u := &UseCase{Port: &fakePort{zones: []*model.Zone{{ID: "Z1", Name: "example.com."}}, zonesTruncated: true}}
	_, err := u.resolveZone(context.Background(), &UpdateInput{ZoneVisibility: model.ZoneVisibilityPreferPublic}, "app.example.com.")
	if !errors.Is(err, model.ErrZoneListTruncated) {
		t.Fatalf("resolveZone() error = %v, want %v", err, model.ErrZoneListTruncated)
	}
}

func TestResolveZoneExplicitName(t *testing.T) {
	port := &fakePort{zones: []*model.Zone{
		{ID: "Z-EXAMPLE", Name: "example.com."},
		{ID: "Z-SUB", Name: "sub.example.com."},
	}}
	u := &UseCase{Port: port}

	// No suffix climbing: the name anchors the search directly, with or
	// without a trailing dot.
	in := &UpdateInput{ZoneName: "sub.example.com", ZoneVisibility: model.ZoneVisibilityPreferPublic}
	zone, err := u.resolveZone(context.Background(), in, "app.other.example.com.")
	if err != nil {
		t.Fatalf("resolveZone() error = %v", err)
	}
	if zone.ID != "Z-SUB" {
		t.Errorf("resolveZone() = %s, want Z-SUB", zone.ID)
	}

	in = &UpdateInput{ZoneName: "missing.example.com", ZoneVisibility: model.ZoneVisibilityPreferPublic}
	if _, err := u.resolveZone(context.Background(), in, "app.example.com."); !errors.Is(err, model.ErrZoneNotFound) {
		t.Errorf("resolveZone() error = %v, want %v", err, model.ErrZoneNotFound)
	}
}

func TestResolveZoneExplicitIDSkipsDiscovery(t *testing.T) {
	port := &fakePort{}
	u := &UseCase{Port: port}
	zone, err := u.resolveZone(context.Background(), &UpdateInput{ZoneID: "Z-GIVEN"}, "app.example.com.")
	if err != nil {
		t.Fatalf("resolveZone() error = %v", err)
	}
	if zone.ID != "Z-GIVEN" {
		t.Errorf("resolveZone() = %s, want Z-GIVEN", zone.ID)
	}
	if port.listCalls != 0 {
		t.Errorf("ListZones called %d times, want 0", port.listCalls)
	}
}
