// Package connectivity tracks whether the backend is reachable and triggers
// a drain after the connection has been stable for a short while.
package connectivity

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"
)

//go:generate moq -out prober_mock.go . Prober

// DefaultStabilizationDelay is the pause after reconnect before callbacks run.
const DefaultStabilizationDelay = 2 * time.Second

// DefaultProbeInterval is used by Run when the interval is not positive.
const DefaultProbeInterval = 15 * time.Second

// Prober checks backend reachability.
type Prober interface {
	Health(ctx context.Context) error
}

// Monitor holds the online flag and notifies subscribers on transitions.
// On an offline to online transition it runs the reconnect callbacks once,
// after StabilizationDelay, unless the connection drops again first.
type Monitor struct {
	ctx         context.Context
	logger      *slog.Logger
	cancel      context.CancelFunc
	pending     *time.Timer
	subscribers map[uint64]func(online bool)
	onReconnect []func(ctx context.Context)
	delay       time.Duration
	nextID      uint64
	generation  uint64
	mu          sync.Mutex
	online      bool
}

// NewMonitor creates a Monitor with the given initial state.
// A non-positive delay selects DefaultStabilizationDelay.
func NewMonitor(initialOnline bool, delay time.Duration, logger *slog.Logger) *Monitor {
	if delay <= 0 {
		delay = DefaultStabilizationDelay
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
		delay:       delay,
		online:      initialOnline,
		subscribers: make(map[uint64]func(bool)),
	}
}

// IsOnline reports the current state.
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline records the current state. Repeating the same state is a no-op.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	m.generation++

	// Любой переход отменяет ожидающий reconnect
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
	if online {
		gen := m.generation
		m.pending = time.AfterFunc(m.delay, func() { m.fireReconnect(gen) })
	}
	subs := m.subscribersLocked()
	m.mu.Unlock()

	if online {
		m.logger.Info("Connection restored")
	} else {
		m.logger.Warn("Connection lost")
	}

	for _, cb := range subs {
		cb(online)
	}
}

// Subscribe registers a transition callback and delivers the current state
// immediately. The returned function unsubscribes.
func (m *Monitor) Subscribe(cb func(online bool)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = cb
	online := m.online
	m.mu.Unlock()

	cb(online)

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// OnReconnect registers a callback run once per stable reconnect.
func (m *Monitor) OnReconnect(cb func(ctx context.Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReconnect = append(m.onReconnect, cb)
}

// Run probes the backend every interval and feeds the result into SetOnline
// until ctx is done.
func (m *Monitor) Run(ctx context.Context, prober Prober, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.probe(ctx, prober, interval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.probe(ctx, prober, interval)
		}
	}
}

// Close cancels a pending reconnect and the context passed to callbacks.
func (m *Monitor) Close() {
	m.mu.Lock()
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
	m.mu.Unlock()
	m.cancel()
}

func (m *Monitor) probe(ctx context.Context, prober Prober, timeout time.Duration) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := prober.Health(probeCtx)
	if err != nil && ctx.Err() != nil {
		return
	}
	if err != nil {
		m.logger.Debug("Health probe failed", "error", err)
	}
	m.SetOnline(err == nil)
}

// fireReconnect запускает callbacks, если с момента планирования не было переходов
func (m *Monitor) fireReconnect(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || !m.online {
		m.mu.Unlock()
		return
	}
	m.pending = nil
	callbacks := slices.Clone(m.onReconnect)
	m.mu.Unlock()

	m.logger.Debug("Connection stable, running reconnect callbacks", "count", len(callbacks))
	for _, cb := range callbacks {
		cb(m.ctx)
	}
}

func (m *Monitor) subscribersLocked() []func(bool) {
	ids := make([]uint64, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]func(bool), 0, len(ids))
	for _, id := range ids {
		out = append(out, m.subscribers[id])
	}
	return out
}
