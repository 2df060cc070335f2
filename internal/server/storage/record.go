package storage

import (
	"context"

	"github.com/iudanet/trackkeeper/internal/models"
)

//go:generate moq -out record_mock.go . RecordStorage

// RecordStorage defines interface for per-user collection records.
// Records are keyed by (user, collection, id); writes are last-write-wins.
type RecordStorage interface {
	// UpsertRecord creates the record or replaces its data.
	// Returns true when a new record was created
	UpsertRecord(ctx context.Context, record *models.Record) (bool, error)

	// UpdateRecord merges patch into the data of an existing record
	// Returns ErrRecordNotFound if the record doesn't exist
	UpdateRecord(ctx context.Context, userID, collection, id string, patch map[string]any) (*models.Record, error)

	// DeleteRecord removes a record
	// Returns false without error when there was nothing to delete
	DeleteRecord(ctx context.Context, userID, collection, id string) (bool, error)

	// GetRecord retrieves a single record
	// Returns ErrRecordNotFound if the record doesn't exist
	GetRecord(ctx context.Context, userID, collection, id string) (*models.Record, error)

	// ListRecords retrieves all records of a collection ordered by creation time
	// Returns empty slice if no records found
	ListRecords(ctx context.Context, userID, collection string) ([]*models.Record, error)
}
