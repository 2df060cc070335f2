package connectivity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonitor_Subscribe(t *testing.T) {
	m := NewMonitor(false, time.Hour, testLogger())
	defer m.Close()

	var mu sync.Mutex
	var seen []bool
	dispose := m.Subscribe(func(online bool) {
		mu.Lock()
		seen = append(seen, online)
		mu.Unlock()
	})

	// Немедленный снимок текущего состояния
	assert.Equal(t, []bool{false}, seen)

	m.SetOnline(true)
	m.SetOnline(true) // повтор состояния не уведомляет
	m.SetOnline(false)
	assert.Equal(t, []bool{false, true, false}, seen)
	assert.False(t, m.IsOnline())

	dispose()
	m.SetOnline(true)
	assert.Len(t, seen, 3)
	assert.True(t, m.IsOnline())
}

func TestMonitor_ReconnectAfterStabilization(t *testing.T) {
	m := NewMonitor(false, 20*time.Millisecond, testLogger())
	defer m.Close()

	var calls atomic.Int32
	m.OnReconnect(func(ctx context.Context) { calls.Add(1) })

	m.SetOnline(true)
	assert.Equal(t, int32(0), calls.Load(), "not before the delay")

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "exactly one callback per reconnect")
}

func TestMonitor_FlapCancelsReconnect(t *testing.T) {
	m := NewMonitor(false, 40*time.Millisecond, testLogger())
	defer m.Close()

	var calls atomic.Int32
	m.OnReconnect(func(ctx context.Context) { calls.Add(1) })

	m.SetOnline(true)
	m.SetOnline(false)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// Серия переходов приводит к одному вызову после последнего online
	m.SetOnline(true)
	m.SetOnline(false)
	m.SetOnline(true)
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMonitor_CloseCancelsPendingReconnect(t *testing.T) {
	m := NewMonitor(false, 20*time.Millisecond, testLogger())

	var calls atomic.Int32
	m.OnReconnect(func(ctx context.Context) { calls.Add(1) })

	m.SetOnline(true)
	m.Close()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestMonitor_Run(t *testing.T) {
	var healthy atomic.Bool
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			if healthy.Load() {
				return nil
			}
			return errors.New("connection refused")
		},
	}

	m := NewMonitor(true, time.Hour, testLogger())
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, prober, 10*time.Millisecond) }()

	require.Eventually(t, func() bool { return !m.IsOnline() }, time.Second, 5*time.Millisecond)

	healthy.Store(true)
	require.Eventually(t, m.IsOnline, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
	assert.NotEmpty(t, prober.HealthCalls())
}

func TestNewMonitor_DefaultDelay(t *testing.T) {
	m := NewMonitor(true, 0, nil)
	defer m.Close()
	assert.Equal(t, DefaultStabilizationDelay, m.delay)
	assert.True(t, m.IsOnline())
}
