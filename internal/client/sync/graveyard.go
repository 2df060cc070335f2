package sync

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/iudanet/trackkeeper/internal/client/storage"
	"github.com/iudanet/trackkeeper/internal/models"
)

// moveToGraveyard переносит операцию в кладбище. Запись в кладбище идет первой
// и использует ID операции как ключ, поэтому повторный перенос не создает дубликатов.
// Если запись не удалась, операция остается в очереди.
func (m *Manager) moveToGraveyard(ctx context.Context, op *models.Operation, reason string) bool {
	failed := &models.FailedOperation{
		Operation:    *op,
		FailedAt:     m.now().UTC(),
		ErrorMessage: reason,
	}

	rec, err := storage.NewRecord(op.ID, op.OwnerID, failed)
	if err != nil {
		m.logger.Warn("Failed to encode failed operation", "op_id", op.ID, "error", err)
		return false
	}
	if !m.store.Put(ctx, storage.CollectionFailed, rec) {
		m.logger.Warn("Failed to move operation to graveyard, keeping it queued", "op_id", op.ID)
		return false
	}
	m.store.Delete(ctx, storage.CollectionQueue, op.ID)

	m.cfg.Metrics.observeOperation(resultExhausted)
	m.logger.Warn("Operation moved to graveyard",
		"op_id", op.ID,
		"kind", op.Kind,
		"collection", op.Collection,
		"retry_count", op.RetryCount,
		"error", reason)
	return true
}

// FailedOperations returns graveyard entries ordered by failure time.
func (m *Manager) FailedOperations(ctx context.Context) []models.FailedOperation {
	records := m.store.GetAll(ctx, storage.CollectionFailed, m.cfg.OwnerID)

	failed := make([]models.FailedOperation, 0, len(records))
	for _, rec := range records {
		var f models.FailedOperation
		if err := rec.Decode(&f); err != nil {
			m.logger.Warn("Skipping unreadable graveyard record", "id", rec.ID, "error", err)
			continue
		}
		failed = append(failed, f)
	}

	slices.SortFunc(failed, func(a, b models.FailedOperation) int {
		if c := a.FailedAt.Compare(b.FailedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return failed
}

// RetryFailedItem re-enqueues a graveyard entry as a fresh operation and
// triggers a drain.
func (m *Manager) RetryFailedItem(ctx context.Context, id string) error {
	f, err := m.getFailed(ctx, id)
	if err != nil {
		return err
	}

	m.requeue(ctx, f)
	m.publishStatus(ctx)
	m.publishFailed(ctx)
	m.scheduleDrain()
	return nil
}

// RetryAllFailed re-enqueues every graveyard entry in original enqueue order
// and returns how many were moved.
func (m *Manager) RetryAllFailed(ctx context.Context) (int, error) {
	failed := m.FailedOperations(ctx)
	if len(failed) == 0 {
		return 0, nil
	}

	slices.SortFunc(failed, func(a, b models.FailedOperation) int {
		if c := a.EnqueuedAt.Compare(b.EnqueuedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	moved := 0
	for i := range failed {
		if m.requeue(ctx, &failed[i]) {
			moved++
		}
	}

	m.logger.Info("Failed operations re-enqueued", "count", moved)
	m.publishStatus(ctx)
	m.publishFailed(ctx)
	m.scheduleDrain()
	return moved, nil
}

// requeue создает новую операцию (новый ID, RetryCount = 0) и удаляет запись кладбища
func (m *Manager) requeue(ctx context.Context, f *models.FailedOperation) bool {
	op := f.Operation.Clone()
	op.ID = uuid.NewString()
	op.RetryCount = 0
	op.EnqueuedAt = m.nextEnqueueTime()

	if !m.saveOperation(ctx, op) {
		m.logger.Warn("Failed to re-enqueue operation", "failed_id", f.ID)
		return false
	}
	m.store.Delete(ctx, storage.CollectionFailed, f.ID)

	m.logger.Debug("Operation re-enqueued", "failed_id", f.ID, "op_id", op.ID)
	return true
}

// DiscardFailedItem permanently removes one graveyard entry.
func (m *Manager) DiscardFailedItem(ctx context.Context, id string) error {
	if _, err := m.getFailed(ctx, id); err != nil {
		return err
	}

	m.store.Delete(ctx, storage.CollectionFailed, id)
	m.logger.Info("Failed operation discarded", "id", id)
	m.publishFailed(ctx)
	return nil
}

// DiscardAllFailed permanently removes every graveyard entry and returns
// how many were removed. The queue is not touched.
func (m *Manager) DiscardAllFailed(ctx context.Context) (int, error) {
	failed := m.FailedOperations(ctx)

	removed := 0
	for _, f := range failed {
		if m.store.Delete(ctx, storage.CollectionFailed, f.ID) {
			removed++
		}
	}

	if removed > 0 {
		m.logger.Info("Failed operations discarded", "count", removed)
	}
	m.publishFailed(ctx)
	return removed, nil
}

func (m *Manager) getFailed(ctx context.Context, id string) (*models.FailedOperation, error) {
	rec, ok := m.store.Get(ctx, storage.CollectionFailed, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFailedOperationNotFound, id)
	}

	f := &models.FailedOperation{}
	if err := rec.Decode(f); err != nil {
		return nil, err
	}
	if m.cfg.OwnerID != "" && f.OwnerID != m.cfg.OwnerID {
		return nil, fmt.Errorf("%w: %s", ErrFailedOperationNotFound, id)
	}
	return f, nil
}
