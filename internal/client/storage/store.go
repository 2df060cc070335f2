package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/trackkeeper/internal/models"
)

//go:generate moq -out store_mock.go . Store

// Служебные коллекции клиента
const (
	CollectionQueue   = "queue"
	CollectionFailed  = "failed"
	CollectionSession = "session"
)

// KnownCollections lists every collection created on Initialize.
var KnownCollections = []string{
	models.CollectionEntries,
	models.CollectionHabits,
	models.CollectionTasks,
	CollectionQueue,
	CollectionFailed,
	CollectionSession,
}

// Record is a stored document. ID is the primary key within a collection,
// Owner is the indexed owner key (may be empty).
type Record struct {
	ID    string          `json:"id"`
	Owner string          `json:"owner,omitempty"`
	Data  json.RawMessage `json:"data"`
}

// NewRecord serializes v into a record.
func NewRecord(id, owner string, v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Record{}, fmt.Errorf("failed to marshal record %s: %w", id, err)
	}
	return Record{ID: id, Owner: owner, Data: data}, nil
}

// Decode unmarshals the record data into v.
func (r Record) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to unmarshal record %s: %w", r.ID, err)
	}
	return nil
}

// Store is the durable local store contract. It is best-effort: engine
// failures are logged by the implementation and reported as false or an
// empty result, never as an error.
type Store interface {
	// Initialize opens the store. It is idempotent and reports whether
	// persistence is available.
	Initialize(ctx context.Context) bool

	// GetAll returns all records of a collection, filtered by owner unless
	// owner is empty.
	GetAll(ctx context.Context, collection, owner string) []Record

	// Get returns a single record by id.
	Get(ctx context.Context, collection, id string) (Record, bool)

	// Put upserts a record by its ID.
	Put(ctx context.Context, collection string, rec Record) bool

	// Delete removes a record. Deleting a missing id succeeds.
	Delete(ctx context.Context, collection, id string) bool

	// Clear removes all records of a collection.
	Clear(ctx context.Context, collection string) bool

	// Close releases the underlying resources.
	Close() error
}
