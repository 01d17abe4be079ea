package rdb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/zoneup/zoneup/domain"
	"github.com/zoneup/zoneup/domain/model"
	"gorm.io/gorm"
)

type JournalRepository struct{ db *gorm.DB }

func NewJournalRepository(db *gorm.DB) *JournalRepository { return &JournalRepository{db: db} }

func journalToRecord(e *model.JournalEntry) (*JournalEntryRecord, error) {
	values, err := json.Marshal(e.Values)
	if err != nil {
		return nil, err
	}
	return &JournalEntryRecord{
		ID:         e.ID,
		ZoneID:     e.ZoneID,
		ZoneName:   e.ZoneName,
		Action:     string(e.Action),
		RecordName: e.RecordName,
		RecordType: string(e.RecordType),
		TTL:        e.TTL,
		Values:     string(values),
		ChangeID:   e.ChangeID,
		Status:     string(e.Status),
		Comment:    e.Comment,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}, nil
}

func journalToModel(r *JournalEntryRecord) (*model.JournalEntry, error) {
	var values []string
	if r.Values != "" {
		if err := json.Unmarshal([]byte(r.Values), &values); err != nil {
			return nil, err
		}
	}
	return &model.JournalEntry{
		ID:         r.ID,
		ZoneID:     r.ZoneID,
		ZoneName:   r.ZoneName,
		Action:     model.ChangeAction(r.Action),
		RecordName: r.RecordName,
		RecordType: model.RecordType(r.RecordType),
		TTL:        r.TTL,
		Values:     values,
		ChangeID:   r.ChangeID,
		Status:     model.ChangeStatus(r.Status),
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func (r *JournalRepository) Create(ctx context.Context, e *model.JournalEntry) error {
	rec, err := journalToRecord(e)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = "chg-" + uuid.NewString()
		e.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *JournalRepository) List(ctx context.Context, limit int) ([]*model.JournalEntry, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []JournalEntryRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.JournalEntry, 0, len(recs))
	for i := range recs {
		e, err := journalToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

var _ domain.JournalRepository = (*JournalRepository)(nil)
