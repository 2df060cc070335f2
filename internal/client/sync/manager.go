// Package sync drains the local operation queue against the remote backend.
//
// The Manager is the only writer of the queue and graveyard collections.
// A drain processes queued operations one at a time in enqueue order; an
// operation that keeps failing is retried on later drains until its retry
// budget is spent and is then moved to the graveyard, where it waits for an
// explicit retry or discard.
package sync

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	stdsync "sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/trackkeeper/internal/client/storage"
	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/retry"
)

// Config configures the Manager.
type Config struct {
	// Metrics may be nil
	Metrics *Metrics
	// OwnerID scopes the queue and graveyard to one user; empty means unscoped
	OwnerID string
	// MaxRetries is the number of failed attempts kept in the queue before
	// the next failure moves an operation to the graveyard
	MaxRetries int
	// DebounceDelay coalesces bursts of enqueues into one drain
	DebounceDelay time.Duration
	// CallTimeout bounds every remote call; zero disables the bound
	CallTimeout time.Duration
	// SyncInterval enables periodic drains in Run; zero disables them
	SyncInterval time.Duration
	// FastFailPermanent moves an operation to the graveyard on the first
	// non-retryable failure instead of spending its remaining budget
	FastFailPermanent bool
}

// DefaultConfig returns the default manager configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries:    3,
		DebounceDelay: 500 * time.Millisecond,
		CallTimeout:   30 * time.Second,
	}
}

// Status is the live sync state broadcast to observers.
type Status struct {
	IsSyncing    bool `json:"is_syncing"`
	PendingCount int  `json:"pending_count"`
}

// Result summarizes one drain.
type Result struct {
	Processed int // операций обработано за проход
	Succeeded int // успешно применены на сервере
	Failed    int // неудачные попытки (включая перенесенные в кладбище)
	Exhausted int // перенесены в кладбище
}

// Manager orchestrates queue drains, the graveyard and status broadcasts.
type Manager struct {
	store        storage.Store
	backend      Backend
	connectivity Connectivity
	logger       *slog.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	debounce     *time.Timer
	now          func() time.Time

	lastEnqueuedAt  time.Time
	statusObservers map[uint64]func(Status)
	failedObservers map[uint64]func([]models.FailedOperation)

	cfg            Config
	nextObserverID uint64
	mu             stdsync.Mutex
	draining       atomic.Bool
	syncing        atomic.Bool
	closed         bool
}

// NewManager creates a Manager. The store must already be initialized.
func NewManager(store storage.Store, backend Backend, connectivity Connectivity, cfg Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		store:           store,
		backend:         backend,
		connectivity:    connectivity,
		logger:          logger,
		cfg:             cfg,
		ctx:             ctx,
		cancel:          cancel,
		now:             time.Now,
		statusObservers: make(map[uint64]func(Status)),
		failedObservers: make(map[uint64]func([]models.FailedOperation)),
	}
}

// QueueOperation validates and persists a new operation, then schedules a
// debounced drain when online.
func (m *Manager) QueueOperation(ctx context.Context, kind models.OperationKind, collection string, payload map[string]any) (*models.Operation, error) {
	op := &models.Operation{
		ID:         uuid.NewString(),
		Kind:       kind,
		Collection: collection,
		Payload:    payload,
		OwnerID:    m.cfg.OwnerID,
	}
	if err := op.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	op.EnqueuedAt = m.nextEnqueueTime()

	if !m.saveOperation(ctx, op) {
		// Хранилище деградировало: операция не переживет перезапуск
		m.logger.Warn("Operation was not persisted", "op_id", op.ID, "collection", collection)
	}

	m.logger.Debug("Operation queued",
		"op_id", op.ID,
		"kind", op.Kind,
		"collection", op.Collection)

	m.publishStatus(ctx)
	m.scheduleDrain()
	return op, nil
}

// ProcessSync drains the queue once. It returns a zero Result when another
// drain is in progress or the backend is offline. Per-item failures never
// surface as errors; only context cancellation does.
func (m *Manager) ProcessSync(ctx context.Context) (result Result, err error) {
	if !m.draining.CompareAndSwap(false, true) {
		m.logger.Debug("Drain already in progress, skipping")
		return Result{}, nil
	}
	defer m.draining.Store(false)

	if !m.connectivity.IsOnline() {
		m.logger.Debug("Offline, skipping drain")
		return Result{}, nil
	}

	exhausted := false
	m.syncing.Store(true)
	defer func() {
		// Финальная публикация выполняется всегда, в том числе при panic и отмене
		m.syncing.Store(false)
		if exhausted {
			m.publishFailed(ctx)
		}
		m.publishStatus(ctx)
	}()

	ops := m.loadQueue(ctx)
	if len(ops) > 0 {
		m.logger.Info("Starting drain", "pending", len(ops))
	}

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("drain interrupted: %w", err)
		}
		result.Processed++

		// Бюджет уже исчерпан (например, MaxRetries уменьшили) - без сетевого вызова
		if op.RetryCount > m.cfg.MaxRetries {
			if m.moveToGraveyard(ctx, op, "retry budget exhausted") {
				result.Exhausted++
				exhausted = true
			}
			m.publishStatus(ctx)
			continue
		}

		callErr := m.apply(ctx, op)
		switch {
		case callErr == nil:
			m.store.Delete(ctx, storage.CollectionQueue, op.ID)
			result.Succeeded++
			m.cfg.Metrics.observeOperation(resultSucceeded)

		case op.RetryCount >= m.cfg.MaxRetries || (m.cfg.FastFailPermanent && !retry.IsRetryable(callErr)):
			result.Failed++
			if m.moveToGraveyard(ctx, op, callErr.Error()) {
				result.Exhausted++
				exhausted = true
			}

		default:
			op.RetryCount++
			m.saveOperation(ctx, op)
			result.Failed++
			m.cfg.Metrics.observeOperation(resultFailed)
			m.logger.Warn("Remote call failed, operation stays queued",
				"op_id", op.ID,
				"kind", op.Kind,
				"collection", op.Collection,
				"retry_count", op.RetryCount,
				"error", callErr)
		}

		m.publishStatus(ctx)
	}

	m.cfg.Metrics.observeDrain()

	if result.Processed > 0 {
		m.logger.Info("Drain completed",
			"processed", result.Processed,
			"succeeded", result.Succeeded,
			"failed", result.Failed,
			"exhausted", result.Exhausted)
	}
	return result, nil
}

// apply выполняет удаленный вызов, соответствующий типу операции
func (m *Manager) apply(ctx context.Context, op *models.Operation) error {
	if m.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.CallTimeout)
		defer cancel()
	}

	switch op.Kind {
	case models.OperationCreate:
		return m.backend.Insert(ctx, op.Collection, op.Payload)
	case models.OperationUpdate, models.OperationDelete:
		id, ok := op.RecordID()
		if !ok {
			return retry.Permanent(models.ErrMissingRecordID)
		}
		if op.Kind == models.OperationUpdate {
			return m.backend.UpdateByID(ctx, op.Collection, id, op.Payload)
		}
		return m.backend.DeleteByID(ctx, op.Collection, id)
	default:
		return retry.Permanent(fmt.Errorf("%w: %q", models.ErrUnknownOperationKind, op.Kind))
	}
}

// PendingOperations returns queued operations in drain order.
func (m *Manager) PendingOperations(ctx context.Context) []*models.Operation {
	return m.loadQueue(ctx)
}

// PendingCount returns the number of queued operations.
func (m *Manager) PendingCount(ctx context.Context) int {
	return len(m.store.GetAll(ctx, storage.CollectionQueue, m.cfg.OwnerID))
}

// Status returns the current sync status.
func (m *Manager) Status(ctx context.Context) Status {
	return Status{IsSyncing: m.syncing.Load(), PendingCount: m.PendingCount(ctx)}
}

// Run drains the queue every SyncInterval until ctx is done. With a zero
// interval it only waits for ctx.
func (m *Manager) Run(ctx context.Context) error {
	if m.cfg.SyncInterval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(m.cfg.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := m.ProcessSync(ctx); err != nil && !errors.Is(err, context.Canceled) {
				m.logger.Warn("Periodic drain failed", "error", err)
			}
		}
	}
}

// Reset clears the queue and the graveyard. Used on logout.
func (m *Manager) Reset(ctx context.Context) {
	m.stopDebounce()
	m.store.Clear(ctx, storage.CollectionQueue)
	m.store.Clear(ctx, storage.CollectionFailed)
	m.publishStatus(ctx)
	m.publishFailed(ctx)
}

// Close stops pending debounced drains. It does not close the store.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.stopDebounce()
	m.cancel()
}

// scheduleDrain откладывает проход на DebounceDelay; повторный вызов сдвигает таймер
func (m *Manager) scheduleDrain() {
	if !m.connectivity.IsOnline() {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	if m.debounce != nil {
		m.debounce.Reset(m.cfg.DebounceDelay)
		return
	}
	m.debounce = time.AfterFunc(m.cfg.DebounceDelay, func() {
		if _, err := m.ProcessSync(m.ctx); err != nil && !errors.Is(err, context.Canceled) {
			m.logger.Warn("Debounced drain failed", "error", err)
		}
	})
}

func (m *Manager) stopDebounce() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.debounce != nil {
		m.debounce.Stop()
		m.debounce = nil
	}
}

// nextEnqueueTime возвращает строго возрастающие метки времени постановки
func (m *Manager) nextEnqueueTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.now().UTC()
	if !t.After(m.lastEnqueuedAt) {
		t = m.lastEnqueuedAt.Add(time.Nanosecond)
	}
	m.lastEnqueuedAt = t
	return t
}

// loadQueue читает очередь и сортирует по EnqueuedAt (при равенстве по ID)
func (m *Manager) loadQueue(ctx context.Context) []*models.Operation {
	records := m.store.GetAll(ctx, storage.CollectionQueue, m.cfg.OwnerID)

	ops := make([]*models.Operation, 0, len(records))
	for _, rec := range records {
		op := &models.Operation{}
		if err := rec.Decode(op); err != nil {
			m.logger.Warn("Skipping unreadable queue record", "id", rec.ID, "error", err)
			continue
		}
		ops = append(ops, op)
	}

	slices.SortFunc(ops, func(a, b *models.Operation) int {
		if c := a.EnqueuedAt.Compare(b.EnqueuedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return ops
}

func (m *Manager) saveOperation(ctx context.Context, op *models.Operation) bool {
	rec, err := storage.NewRecord(op.ID, op.OwnerID, op)
	if err != nil {
		m.logger.Warn("Failed to encode operation", "op_id", op.ID, "error", err)
		return false
	}
	return m.store.Put(ctx, storage.CollectionQueue, rec)
}
