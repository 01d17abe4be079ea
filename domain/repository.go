package domain

import (
	"context"

	"github.com/zoneup/zoneup/domain/model"
)

// JournalRepository stores and retrieves JournalEntry aggregates.
type JournalRepository interface {
	Create(ctx context.Context, e *model.JournalEntry) error
	List(ctx context.Context, limit int) ([]*model.JournalEntry, error)
}
