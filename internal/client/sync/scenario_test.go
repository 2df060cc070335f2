package sync

import (
	"context"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/trackkeeper/internal/client/connectivity"
	"github.com/iudanet/trackkeeper/internal/client/storage/memory"
	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/retry"
)

// Очередь, накопленная офлайн, уходит на сервер после восстановления связи
func TestScenario_OfflineQueueDrainsOnReconnect(t *testing.T) {
	ctx := context.Background()

	store := memory.New()
	require.True(t, store.Initialize(ctx))

	monitor := connectivity.NewMonitor(false, 30*time.Millisecond, testLogger())
	defer monitor.Close()

	backend := acceptAll()
	manager := NewManager(store, backend, monitor, Config{
		MaxRetries:    3,
		DebounceDelay: 10 * time.Millisecond,
		CallTimeout:   time.Second,
	}, testLogger())
	defer manager.Close()

	drained := make(chan Result, 1)
	monitor.OnReconnect(func(ctx context.Context) {
		result, err := manager.ProcessSync(ctx)
		assert.NoError(t, err)
		drained <- result
	})

	for _, id := range []string{"e1", "e2", "e3"} {
		_, err := manager.QueueOperation(ctx, models.OperationCreate, models.CollectionEntries, entryPayload(id, 75))
		require.NoError(t, err)
	}

	assert.Equal(t, 3, manager.PendingCount(ctx))
	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, backend.InsertCalls(), "no network calls while offline")

	monitor.SetOnline(true)

	select {
	case result := <-drained:
		assert.Equal(t, 3, result.Succeeded)
	case <-time.After(2 * time.Second):
		t.Fatal("reconnect drain did not run")
	}

	assert.Equal(t, 0, manager.PendingCount(ctx))
	calls := backend.InsertCalls()
	require.Len(t, calls, 3)
	for i, id := range []string{"e1", "e2", "e3"} {
		assert.Equal(t, models.CollectionEntries, calls[i].Collection)
		assert.Equal(t, id, calls[i].Payload["id"])
	}
}

// Операция с постоянной ошибкой 500 попадает в кладбище после initial + MaxRetries попыток
func TestScenario_ExhaustedUpdateLandsInGraveyard(t *testing.T) {
	ctx := context.Background()

	backend := acceptAll()
	backend.UpdateByIDFunc = func(ctx context.Context, collection string, id string, payload map[string]any) error {
		return retry.NewStatusError(500, "internal server error")
	}
	env := newTestEnv(t, backend, Config{MaxRetries: 2})

	var mu stdsync.Mutex
	var graveyard []models.FailedOperation
	dispose := env.manager.OnFailedSyncChange(func(f []models.FailedOperation) {
		mu.Lock()
		graveyard = f
		mu.Unlock()
	})
	defer dispose()

	op, err := env.manager.QueueOperation(ctx, models.OperationUpdate, models.CollectionHabits,
		map[string]any{"id": "h1", "name": "stretch"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := env.manager.ProcessSync(ctx)
		require.NoError(t, err)
	}

	assert.Len(t, backend.UpdateByIDCalls(), 3)
	assert.Empty(t, env.manager.PendingOperations(ctx))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, graveyard, 1)
	assert.Equal(t, op.ID, graveyard[0].ID)
	assert.False(t, graveyard[0].FailedAt.IsZero())
}
