package sync

import (
	"context"
	"slices"

	"github.com/iudanet/trackkeeper/internal/models"
)

// OnSyncStatusChange registers an observer of sync status changes. The
// current status is delivered immediately. Observers are called synchronously
// in registration order. The returned function unregisters the observer.
func (m *Manager) OnSyncStatusChange(cb func(Status)) func() {
	m.mu.Lock()
	id := m.nextObserverID
	m.nextObserverID++
	m.statusObservers[id] = cb
	m.mu.Unlock()

	cb(m.Status(m.ctx))

	return func() {
		m.mu.Lock()
		delete(m.statusObservers, id)
		m.mu.Unlock()
	}
}

// OnFailedSyncChange registers an observer of graveyard changes, with the
// same delivery rules as OnSyncStatusChange.
func (m *Manager) OnFailedSyncChange(cb func([]models.FailedOperation)) func() {
	m.mu.Lock()
	id := m.nextObserverID
	m.nextObserverID++
	m.failedObservers[id] = cb
	m.mu.Unlock()

	cb(m.FailedOperations(m.ctx))

	return func() {
		m.mu.Lock()
		delete(m.failedObservers, id)
		m.mu.Unlock()
	}
}

// publishStatus вызывает наблюдателей вне блокировки
func (m *Manager) publishStatus(ctx context.Context) {
	status := Status{IsSyncing: m.syncing.Load(), PendingCount: m.PendingCount(ctx)}
	m.cfg.Metrics.setPending(status.PendingCount)

	for _, cb := range snapshot(m, m.statusObservers) {
		cb(status)
	}
}

func (m *Manager) publishFailed(ctx context.Context) {
	failed := m.FailedOperations(ctx)
	m.cfg.Metrics.setFailed(len(failed))

	for _, cb := range snapshot(m, m.failedObservers) {
		cb(slices.Clone(failed))
	}
}

// snapshot копирует наблюдателей под блокировкой в порядке регистрации
func snapshot[F any](m *Manager, observers map[uint64]F) []F {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]uint64, 0, len(observers))
	for id := range observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]F, 0, len(ids))
	for _, id := range ids {
		out = append(out, observers[id])
	}
	return out
}
