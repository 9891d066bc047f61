package repository

import (
	"context"

	"sales-assistant/internal/domain/entities"
)

// EditRecordRepository persists edit records in insertion order with a FIFO
// cap: once the cap is reached the oldest record is evicted first.
type EditRecordRepository interface {
	Append(ctx context.Context, record entities.EditRecord) error
	// FindRecent returns up to limit of the newest records, oldest first.
	// A limit <= 0 returns everything.
	FindRecent(ctx context.Context, limit int) ([]entities.EditRecord, error)
	Count(ctx context.Context) (int, error)
}

const (
	EmailEditsCollection  = "email_edits"
	EmailEditsFile        = "email-edits.json"
	DefaultMaxEditRecords = 100
)
