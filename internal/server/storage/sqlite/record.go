package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/server/storage"
)

// UpsertRecord creates the record or replaces its data
func (s *Storage) UpsertRecord(ctx context.Context, record *models.Record) (bool, error) {
	data, err := json.Marshal(record.Data)
	if err != nil {
		return false, fmt.Errorf("failed to marshal record data: %w", err)
	}

	now := time.Now().UTC()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM records WHERE user_id = ? AND collection = ? AND id = ?`,
		record.UserID, record.Collection, record.ID,
	).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to check record: %w", err)
	}
	created := errors.Is(err, sql.ErrNoRows)

	// Последняя запись побеждает, created_at сохраняется
	query := `
		INSERT INTO records (user_id, collection, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, collection, id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, query,
		record.UserID, record.Collection, record.ID, string(data), now, now,
	); err != nil {
		return false, fmt.Errorf("failed to upsert record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}

	record.UpdatedAt = now
	if created {
		record.CreatedAt = now
	}
	return created, nil
}

// UpdateRecord merges patch into the data of an existing record
func (s *Storage) UpdateRecord(ctx context.Context, userID, collection, id string, patch map[string]any) (*models.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	record, err := scanRecord(tx.QueryRowContext(ctx, selectRecord+` WHERE user_id = ? AND collection = ? AND id = ?`,
		userID, collection, id))
	if err != nil {
		return nil, err
	}

	if record.Data == nil {
		record.Data = make(map[string]any, len(patch))
	}
	maps.Copy(record.Data, patch)
	data, err := json.Marshal(record.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record data: %w", err)
	}

	record.UpdatedAt = time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`UPDATE records SET data = ?, updated_at = ? WHERE user_id = ? AND collection = ? AND id = ?`,
		string(data), record.UpdatedAt, userID, collection, id,
	); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return record, nil
}

// DeleteRecord removes a record
func (s *Storage) DeleteRecord(ctx context.Context, userID, collection, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE user_id = ? AND collection = ? AND id = ?`,
		userID, collection, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// GetRecord retrieves a single record
func (s *Storage) GetRecord(ctx context.Context, userID, collection, id string) (*models.Record, error) {
	return scanRecord(s.db.QueryRowContext(ctx, selectRecord+` WHERE user_id = ? AND collection = ? AND id = ?`,
		userID, collection, id))
}

// ListRecords retrieves all records of a collection ordered by creation time
func (s *Storage) ListRecords(ctx context.Context, userID, collection string) ([]*models.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectRecord+` WHERE user_id = ? AND collection = ? ORDER BY created_at, id`,
		userID, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*models.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

const selectRecord = `SELECT user_id, collection, id, data, created_at, updated_at FROM records`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	record := &models.Record{}
	var data string

	err := row.Scan(&record.UserID, &record.Collection, &record.ID, &data, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &record.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record data: %w", err)
	}
	return record, nil
}
