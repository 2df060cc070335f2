package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/trackkeeper/internal/client/storage"
	"github.com/iudanet/trackkeeper/internal/client/storage/memory"
	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/ratelimit"
	"github.com/iudanet/trackkeeper/internal/validation"
	pkgapi "github.com/iudanet/trackkeeper/pkg/api"
)

const testOwner = "user-1"

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *memory.Store, *QueueMock) {
	t.Helper()

	store := memory.New()
	require.True(t, store.Initialize(context.Background()))

	queue := &QueueMock{
		QueueOperationFunc: func(ctx context.Context, kind models.OperationKind, collection string, payload map[string]any) (*models.Operation, error) {
			return &models.Operation{ID: "op", Kind: kind, Collection: collection, Payload: payload}, nil
		},
	}

	limiter := ratelimit.NewWithClock(func() time.Time { return fixedNow })
	svc := NewService(store, queue, limiter, testOwner, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.now = func() time.Time { return fixedNow }
	return svc, store, queue
}

func TestService_AddWeight(t *testing.T) {
	svc, store, queue := newTestService(t)
	ctx := context.Background()

	entry, err := svc.AddWeight(ctx, 72.4, "  morning ")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "morning", entry.Note)
	assert.Equal(t, fixedNow, entry.RecordedAt)

	// Оптимистичная запись в локальный кэш
	rec, ok := store.Get(ctx, models.CollectionEntries, entry.ID)
	require.True(t, ok)
	assert.Equal(t, testOwner, rec.Owner)

	calls := queue.QueueOperationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.OperationCreate, calls[0].Kind)
	assert.Equal(t, models.CollectionEntries, calls[0].Collection)
	assert.Equal(t, entry.ID, calls[0].Payload["id"])
	assert.Equal(t, 72.4, calls[0].Payload["weight_kg"])
}

func TestService_AddWeight_InvalidInput(t *testing.T) {
	svc, _, queue := newTestService(t)

	for _, w := range []float64{0, -1, 1000, 5000} {
		_, err := svc.AddWeight(context.Background(), w, "")
		assert.ErrorIs(t, err, ErrInvalidInput, "weight %v", w)
	}
	assert.Empty(t, queue.QueueOperationCalls())
}

func TestService_AddHabitAndTask(t *testing.T) {
	svc, _, queue := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddHabit(ctx, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	habit, err := svc.AddHabit(ctx, "Read")
	require.NoError(t, err)
	assert.Empty(t, habit.CompletedDates)

	_, err = svc.AddTask(ctx, "Buy milk", "14-03-2026")
	assert.ErrorIs(t, err, ErrInvalidInput)

	task, err := svc.AddTask(ctx, "Buy milk", "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", task.DueDate)
	assert.False(t, task.Done)

	calls := queue.QueueOperationCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.CollectionHabits, calls[0].Collection)
	assert.Equal(t, models.CollectionTasks, calls[1].Collection)
}

func TestService_ToggleHabit(t *testing.T) {
	svc, store, queue := newTestService(t)
	ctx := context.Background()

	habit, err := svc.AddHabit(ctx, "Run")
	require.NoError(t, err)

	toggled, marked, err := svc.ToggleHabit(ctx, habit.ID, "")
	require.NoError(t, err)
	assert.True(t, marked)
	assert.Equal(t, []string{"2026-03-14"}, toggled.CompletedDates)

	_, marked, err = svc.ToggleHabit(ctx, habit.ID, "2026-03-14")
	require.NoError(t, err)
	assert.False(t, marked)

	var cached models.Habit
	rec, ok := store.Get(ctx, models.CollectionHabits, habit.ID)
	require.True(t, ok)
	require.NoError(t, rec.Decode(&cached))
	assert.Empty(t, cached.CompletedDates)

	calls := queue.QueueOperationCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, models.OperationUpdate, calls[1].Kind)
	assert.Equal(t, models.OperationUpdate, calls[2].Kind)
}

func TestService_ToggleHabit_Unknown(t *testing.T) {
	svc, _, queue := newTestService(t)

	_, _, err := svc.ToggleHabit(context.Background(), "missing", "")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	_, _, err = svc.ToggleHabit(context.Background(), "missing", "yesterday")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, queue.QueueOperationCalls())
}

func TestService_ToggleHabit_ForeignOwner(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	rec, err := storage.NewRecord("h-other", "user-2", models.Habit{ID: "h-other", Name: "Swim"})
	require.NoError(t, err)
	require.True(t, store.Put(ctx, models.CollectionHabits, rec))

	_, _, err = svc.ToggleHabit(ctx, "h-other", "")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestService_CompleteTask(t *testing.T) {
	svc, _, queue := newTestService(t)
	ctx := context.Background()

	task, err := svc.AddTask(ctx, "Write report", "")
	require.NoError(t, err)

	done, err := svc.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, done.Done)

	calls := queue.QueueOperationCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.OperationUpdate, calls[1].Kind)
	assert.Equal(t, true, calls[1].Payload["done"])

	_, err = svc.CompleteTask(ctx, "nope")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, store, queue := newTestService(t)
	ctx := context.Background()

	entry, err := svc.AddWeight(ctx, 80, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, models.CollectionEntries, entry.ID))
	_, ok := store.Get(ctx, models.CollectionEntries, entry.ID)
	assert.False(t, ok)

	calls := queue.QueueOperationCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.OperationDelete, calls[1].Kind)
	assert.Equal(t, map[string]any{"id": entry.ID}, calls[1].Payload)

	assert.ErrorIs(t, svc.Delete(ctx, "secrets", "x"), validation.ErrUnknownCollection)
	assert.ErrorIs(t, svc.Delete(ctx, models.CollectionTasks, ""), validation.ErrInvalidRecordID)
}

func TestService_RateLimited(t *testing.T) {
	svc, store, queue := newTestService(t)
	ctx := context.Background()

	limit := ratelimit.MustPreset(ratelimit.PresetCreate).MaxRequests
	for i := 0; i < limit; i++ {
		_, err := svc.AddHabit(ctx, "habit")
		require.NoError(t, err)
	}

	_, err := svc.AddHabit(ctx, "one too many")
	require.ErrorIs(t, err, ratelimit.ErrRateLimited)
	assert.Contains(t, err.Error(), "create:habits")

	// Отклоненная операция ничего не пишет
	assert.Len(t, queue.QueueOperationCalls(), limit)
	assert.Len(t, store.GetAll(ctx, models.CollectionHabits, testOwner), limit)

	// Лимиты независимы по коллекциям
	_, err = svc.AddTask(ctx, "still allowed", "")
	assert.NoError(t, err)
}

func TestService_QueueFailure(t *testing.T) {
	svc, _, queue := newTestService(t)
	queueErr := errors.New("queue closed")
	queue.QueueOperationFunc = func(ctx context.Context, kind models.OperationKind, collection string, payload map[string]any) (*models.Operation, error) {
		return nil, queueErr
	}

	_, err := svc.AddTask(context.Background(), "x", "")
	assert.ErrorIs(t, err, queueErr)
}

func TestService_Listings(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddWeight(ctx, 70, "")
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	latest, err := svc.AddWeight(ctx, 71, "")
	require.NoError(t, err)

	weights := svc.Weights(ctx)
	require.Len(t, weights, 2)
	assert.Equal(t, latest.ID, weights[0].ID)

	_, err = svc.AddHabit(ctx, "b-habit")
	require.NoError(t, err)
	_, err = svc.AddHabit(ctx, "a-habit")
	require.NoError(t, err)
	habits := svc.Habits(ctx)
	require.Len(t, habits, 2)
	assert.Equal(t, "a-habit", habits[0].Name)

	done, err := svc.AddTask(ctx, "a-done", "")
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, done.ID)
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "z-open", "")
	require.NoError(t, err)
	tasks := svc.Tasks(ctx)
	require.Len(t, tasks, 2)
	assert.Equal(t, "z-open", tasks[0].Title)
	assert.True(t, tasks[1].Done)
}

func TestService_Pull(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	lister := &ListerMock{
		ListFunc: func(ctx context.Context, collection string) ([]pkgapi.RecordResponse, error) {
			assert.Equal(t, models.CollectionTasks, collection)
			return []pkgapi.RecordResponse{
				{ID: "t1", Collection: collection, Data: map[string]any{"id": "t1", "title": "From server", "done": true}},
			}, nil
		},
	}

	n, err := svc.Pull(ctx, lister, models.CollectionTasks)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tasks := svc.Tasks(ctx)
	require.Len(t, tasks, 1)
	assert.Equal(t, "From server", tasks[0].Title)
	assert.True(t, tasks[0].Done)

	lister.ListFunc = func(ctx context.Context, collection string) ([]pkgapi.RecordResponse, error) {
		return nil, errors.New("network down")
	}
	_, err = svc.Pull(ctx, lister, models.CollectionTasks)
	assert.Error(t, err)

	_, err = svc.Pull(ctx, lister, "unknown")
	assert.ErrorIs(t, err, validation.ErrUnknownCollection)
}

func TestService_ClearCache(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddHabit(ctx, "Read")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "Write", "")
	require.NoError(t, err)

	svc.ClearCache(ctx)
	assert.Empty(t, store.GetAll(ctx, models.CollectionHabits, ""))
	assert.Empty(t, svc.Tasks(ctx))
}
