package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clisync "github.com/iudanet/trackkeeper/internal/client/sync"
	"github.com/iudanet/trackkeeper/internal/models"
)

func TestCli_Sync(t *testing.T) {
	syncer := idleSync()
	syncer.ProcessSyncFunc = func(ctx context.Context) (clisync.Result, error) {
		return clisync.Result{Processed: 3, Succeeded: 2, Failed: 1, Exhausted: 1}, nil
	}
	remote := &RemoteMock{HealthFunc: func(ctx context.Context) error { return nil }}
	network := &NetworkMock{SetOnlineFunc: func(online bool) {}}
	c, out := newBufferedCli("", &AuthServiceMock{}, WithTracker(&TrackerServiceMock{}, syncer), WithRemote(remote, network))

	require.NoError(t, c.Run(context.Background(), "sync", nil))

	require.Len(t, network.SetOnlineCalls(), 1)
	assert.True(t, network.SetOnlineCalls()[0].Online)
	assert.Len(t, syncer.ProcessSyncCalls(), 1)

	text := out.String()
	assert.Contains(t, text, "Processed: 3")
	assert.Contains(t, text, "Succeeded: 2")
	assert.Contains(t, text, "1 operation(s) moved to failed")
	assert.Contains(t, text, "All operations synchronized")
}

func TestCli_Sync_ServerUnreachable(t *testing.T) {
	syncer := idleSync()
	syncer.StatusFunc = func(ctx context.Context) clisync.Status {
		return clisync.Status{PendingCount: 5}
	}
	remote := &RemoteMock{HealthFunc: func(ctx context.Context) error { return errors.New("connection refused") }}
	network := &NetworkMock{SetOnlineFunc: func(online bool) {}}
	c, out := newBufferedCli("", &AuthServiceMock{}, WithTracker(&TrackerServiceMock{}, syncer), WithRemote(remote, network))

	require.NoError(t, c.Run(context.Background(), "sync", nil))

	assert.Empty(t, syncer.ProcessSyncCalls(), "no drain while offline")
	require.Len(t, network.SetOnlineCalls(), 1)
	assert.False(t, network.SetOnlineCalls()[0].Online)
	assert.Contains(t, out.String(), "5 operation(s) stay queued")
}

func TestCli_Sync_Interrupted(t *testing.T) {
	syncer := idleSync()
	syncer.ProcessSyncFunc = func(ctx context.Context) (clisync.Result, error) {
		return clisync.Result{Processed: 1}, context.Canceled
	}
	c, _ := newBufferedCli("", &AuthServiceMock{}, WithTracker(&TrackerServiceMock{}, syncer))

	err := c.Run(context.Background(), "sync", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCli_Failed(t *testing.T) {
	syncer := idleSync()
	c, out := newBufferedCli("", &AuthServiceMock{}, WithTracker(&TrackerServiceMock{}, syncer))

	require.NoError(t, c.Run(context.Background(), "failed", nil))
	assert.Contains(t, out.String(), "No failed operations.")

	syncer.FailedOperationsFunc = func(ctx context.Context) []models.FailedOperation {
		return []models.FailedOperation{{
			FailedAt:     time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
			ErrorMessage: "remote error (500): boom",
			Operation: models.Operation{
				ID:         "op-1",
				Kind:       models.OperationUpdate,
				Collection: models.CollectionHabits,
				Payload:    map[string]any{"id": "h1"},
				RetryCount: 2,
			},
		}}
	}
	require.NoError(t, c.Run(context.Background(), "failed", nil))

	text := out.String()
	assert.Contains(t, text, "1. update habits/h1")
	assert.Contains(t, text, "ID:       op-1")
	assert.Contains(t, text, "Failed:   2026-03-14 12:00:00")
	assert.Contains(t, text, "Attempts: 3")
	assert.Contains(t, text, "Error:    remote error (500): boom")
}

func TestCli_RetryAndDiscard(t *testing.T) {
	syncer := idleSync()
	syncer.RetryFailedItemFunc = func(ctx context.Context, id string) error {
		if id != "op-1" {
			return clisync.ErrFailedOperationNotFound
		}
		return nil
	}
	syncer.RetryAllFailedFunc = func(ctx context.Context) (int, error) { return 2, nil }
	syncer.DiscardFailedItemFunc = func(ctx context.Context, id string) error { return nil }
	syncer.DiscardAllFailedFunc = func(ctx context.Context) (int, error) { return 3, nil }
	c, out := newBufferedCli("", &AuthServiceMock{}, WithTracker(&TrackerServiceMock{}, syncer))
	ctx := context.Background()

	require.NoError(t, c.Run(ctx, "retry", []string{"op-1"}))
	assert.ErrorIs(t, c.Run(ctx, "retry", []string{"op-2"}), clisync.ErrFailedOperationNotFound)
	require.NoError(t, c.Run(ctx, "retry", []string{"--all"}))
	require.NoError(t, c.Run(ctx, "discard", []string{"op-1"}))
	require.NoError(t, c.Run(ctx, "discard", []string{"--all"}))

	text := out.String()
	assert.Contains(t, text, "Operation op-1 moved back to the queue")
	assert.Contains(t, text, "2 operation(s) moved back to the queue")
	assert.Contains(t, text, "Operation op-1 discarded")
	assert.Contains(t, text, "3 operation(s) discarded")

	assert.True(t, IsUsageError(c.Run(ctx, "retry", nil)))
	assert.True(t, IsUsageError(c.Run(ctx, "discard", nil)))
}
