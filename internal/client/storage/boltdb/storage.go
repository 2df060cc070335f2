package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/trackkeeper/internal/client/storage"
)

var (
	// Вложенные buckets внутри bucket коллекции
	bucketRecords = []byte("records")
	bucketByOwner = []byte("by_owner")
)

// ownerSeparator отделяет владельца от id в ключе индекса
const ownerSeparator = "\x00"

// defaultOpenTimeout ограничивает ожидание file lock другого процесса
const defaultOpenTimeout = time.Second

// Storage represents BoltDB storage implementation for client.
// Each collection is a top-level bucket holding a "records" bucket
// (id -> JSON record) and a "by_owner" index bucket (owner\x00id -> empty).
type Storage struct {
	db          *bbolt.DB
	logger      *slog.Logger
	path        string
	openTimeout time.Duration
	mu          sync.RWMutex
}

var _ storage.Store = (*Storage)(nil)

// New creates a BoltDB storage bound to dbPath. The file is opened by Initialize.
func New(dbPath string, logger *slog.Logger) *Storage {
	if logger == nil {
		logger = slog.Default()
	}
	return &Storage{
		path:        dbPath,
		logger:      logger,
		openTimeout: defaultOpenTimeout,
	}
}

// Initialize opens the database and creates buckets for known collections.
func (s *Storage) Initialize(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return true
	}

	// Открываем BoltDB
	db, err := bbolt.Open(s.path, 0600, &bbolt.Options{Timeout: s.openTimeout})
	if err != nil {
		s.logger.Warn("failed to open boltdb", "path", s.path, "error", err)
		return false
	}

	if err := initBuckets(db); err != nil {
		s.logger.Warn("failed to initialize buckets", "path", s.path, "error", err)
		_ = db.Close()
		return false
	}

	s.db = db
	return true
}

// Close closes the database connection
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает buckets коллекций если они не существуют
func initBuckets(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range storage.KnownCollections {
			if _, err := collectionBuckets(tx, name); err != nil {
				return err
			}
		}
		return nil
	})
}

// collectionBuckets возвращает (создавая при необходимости) вложенные buckets коллекции
func collectionBuckets(tx *bbolt.Tx, collection string) (*bbolt.Bucket, error) {
	root, err := tx.CreateBucketIfNotExists([]byte(collection))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s bucket: %w", collection, err)
	}
	if _, err := root.CreateBucketIfNotExists(bucketRecords); err != nil {
		return nil, fmt.Errorf("failed to create %s records bucket: %w", collection, err)
	}
	if _, err := root.CreateBucketIfNotExists(bucketByOwner); err != nil {
		return nil, fmt.Errorf("failed to create %s owner index: %w", collection, err)
	}
	return root, nil
}

func ownerKey(owner, id string) []byte {
	return []byte(owner + ownerSeparator + id)
}

// view выполняет read-only транзакцию; false если БД не открыта или произошла ошибка
func (s *Storage) view(op, collection string, fn func(tx *bbolt.Tx) error) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return false
	}
	if err := s.db.View(fn); err != nil {
		s.logger.Warn("boltdb read failed", "op", op, "collection", collection, "error", err)
		return false
	}
	return true
}

func (s *Storage) update(op, collection string, fn func(tx *bbolt.Tx) error) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return false
	}
	if err := s.db.Update(fn); err != nil {
		s.logger.Warn("boltdb write failed", "op", op, "collection", collection, "error", err)
		return false
	}
	return true
}

// GetAll returns all records of a collection, optionally filtered by owner.
func (s *Storage) GetAll(ctx context.Context, collection, owner string) []storage.Record {
	var result []storage.Record

	ok := s.view("get_all", collection, func(tx *bbolt.Tx) error {
		root := tx.Bucket([]byte(collection))
		if root == nil {
			return nil
		}
		records := root.Bucket(bucketRecords)

		if owner == "" {
			// Итерируемся по всем записям
			return records.ForEach(func(k, v []byte) error {
				if rec, ok := s.decodeOrSkip(ctx, collection, k, v); ok {
					result = append(result, rec)
				}
				return nil
			})
		}

		// Выборка по индексу владельца через prefix seek
		prefix := []byte(owner + ownerSeparator)
		c := root.Bucket(bucketByOwner).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			v := records.Get(k[len(prefix):])
			if v == nil {
				continue
			}
			if rec, ok := s.decodeOrSkip(ctx, collection, k[len(prefix):], v); ok {
				result = append(result, rec)
			}
		}
		return nil
	})
	if !ok {
		return nil
	}
	return result
}

// Get returns a single record by id.
func (s *Storage) Get(ctx context.Context, collection, id string) (storage.Record, bool) {
	var (
		rec   storage.Record
		found bool
	)

	ok := s.view("get", collection, func(tx *bbolt.Tx) error {
		root := tx.Bucket([]byte(collection))
		if root == nil {
			return nil
		}
		v := root.Bucket(bucketRecords).Get([]byte(id))
		if v == nil {
			return nil
		}
		var err error
		rec, err = decode(v)
		found = err == nil
		return err
	})
	return rec, ok && found
}

// Put upserts a record and keeps the owner index consistent.
func (s *Storage) Put(ctx context.Context, collection string, rec storage.Record) bool {
	if rec.ID == "" {
		s.logger.Warn("boltdb put skipped: empty record id", "collection", collection)
		return false
	}

	// Сериализуем запись в JSON
	data, err := json.Marshal(rec)
	if err != nil {
		s.logger.Warn("failed to marshal record", "collection", collection, "id", rec.ID, "error", err)
		return false
	}

	return s.update("put", collection, func(tx *bbolt.Tx) error {
		root, err := collectionBuckets(tx, collection)
		if err != nil {
			return err
		}
		records := root.Bucket(bucketRecords)
		index := root.Bucket(bucketByOwner)
		key := []byte(rec.ID)

		// При смене владельца удаляем старый ключ индекса
		if prev := records.Get(key); prev != nil {
			old, err := decode(prev)
			if err == nil && old.Owner != rec.Owner && old.Owner != "" {
				if err := index.Delete(ownerKey(old.Owner, old.ID)); err != nil {
					return fmt.Errorf("failed to delete owner index: %w", err)
				}
			}
		}

		if err := records.Put(key, data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		if rec.Owner != "" {
			if err := index.Put(ownerKey(rec.Owner, rec.ID), []byte{}); err != nil {
				return fmt.Errorf("failed to save owner index: %w", err)
			}
		}
		return nil
	})
}

// Delete removes a record. A missing record is a no-op success.
func (s *Storage) Delete(ctx context.Context, collection, id string) bool {
	return s.update("delete", collection, func(tx *bbolt.Tx) error {
		root := tx.Bucket([]byte(collection))
		if root == nil {
			return nil
		}
		records := root.Bucket(bucketRecords)
		key := []byte(id)

		prev := records.Get(key)
		if prev == nil {
			return nil
		}
		if old, err := decode(prev); err == nil && old.Owner != "" {
			if err := root.Bucket(bucketByOwner).Delete(ownerKey(old.Owner, id)); err != nil {
				return fmt.Errorf("failed to delete owner index: %w", err)
			}
		}

		if err := records.Delete(key); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}
		return nil
	})
}

// Clear drops and recreates the collection buckets.
func (s *Storage) Clear(ctx context.Context, collection string) bool {
	return s.update("clear", collection, func(tx *bbolt.Tx) error {
		name := []byte(collection)
		if tx.Bucket(name) != nil {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to delete %s bucket: %w", collection, err)
			}
		}
		_, err := collectionBuckets(tx, collection)
		return err
	})
}

// decodeOrSkip декодирует запись; поврежденная запись логируется и пропускается
func (s *Storage) decodeOrSkip(ctx context.Context, collection string, id, v []byte) (storage.Record, bool) {
	rec, err := decode(v)
	if err != nil {
		s.logger.WarnContext(ctx, "skipping undecodable record",
			"collection", collection, "id", string(id), "error", err)
		return storage.Record{}, false
	}
	return rec, true
}

func decode(v []byte) (storage.Record, error) {
	var rec storage.Record
	if err := json.Unmarshal(v, &rec); err != nil {
		return storage.Record{}, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return rec, nil
}
