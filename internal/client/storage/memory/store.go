// Package memory provides an in-memory storage.Store used when the durable
// store cannot be opened and in tests.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/iudanet/trackkeeper/internal/client/storage"
)

// Store keeps collections in maps guarded by a RWMutex. Data is copied on
// the way in and out so callers never share buffers with the store.
type Store struct {
	collections map[string]map[string]storage.Record
	mu          sync.RWMutex
}

var _ storage.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string]map[string]storage.Record)}
}

// Initialize always succeeds.
func (s *Store) Initialize(ctx context.Context) bool {
	return true
}

func (s *Store) GetAll(ctx context.Context, collection, owner string) []storage.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []storage.Record
	for _, rec := range s.collections[collection] {
		if owner != "" && rec.Owner != owner {
			continue
		}
		result = append(result, clone(rec))
	}
	return result
}

func (s *Store) Get(ctx context.Context, collection, id string) (storage.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collections[collection][id]
	if !ok {
		return storage.Record{}, false
	}
	return clone(rec), true
}

func (s *Store) Put(ctx context.Context, collection string, rec storage.Record) bool {
	if rec.ID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[collection]
	if !ok {
		records = make(map[string]storage.Record)
		s.collections[collection] = records
	}
	records[rec.ID] = clone(rec)
	return true
}

func (s *Store) Delete(ctx context.Context, collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return true
}

func (s *Store) Clear(ctx context.Context, collection string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections, collection)
	return true
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

func clone(rec storage.Record) storage.Record {
	rec.Data = bytes.Clone(rec.Data)
	return rec
}
