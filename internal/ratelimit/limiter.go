// Package ratelimit implements sliding-window admission control keyed by
// operation class. Each key keeps the timestamps of its admitted requests
// inside the current window; stale timestamps are pruned lazily on every check.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned to callers whose request was rejected locally.
var ErrRateLimited = errors.New("rate limit exceeded")

// Config описывает лимит: не более MaxRequests запросов за Window
type Config struct {
	MaxRequests int
	Window      time.Duration
}

// Limiter is a sliding-window rate limiter with independent windows per key.
type Limiter struct {
	records map[string][]time.Time
	now     func() time.Time
	mu      sync.Mutex
}

// New создает новый limiter
func New() *Limiter {
	return NewWithClock(time.Now)
}

// NewWithClock creates a limiter that reads time from now. Used in tests.
func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		records: make(map[string][]time.Time),
		now:     now,
	}
}

// CheckAndRecord reports whether key is limited under cfg. A request that is
// not limited is recorded; a limited one is not.
func (l *Limiter) CheckAndRecord(key string, cfg Config) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	timestamps := l.prune(key, cfg, now)

	// Граница включительная: count == max уже отклоняется
	if len(timestamps) >= cfg.MaxRequests {
		return true
	}

	l.records[key] = append(timestamps, now)
	return false
}

// Decision is the outcome of one admission check.
type Decision struct {
	ResetAt   time.Time
	Remaining int
	Limited   bool
}

// Admit checks and records a request like CheckAndRecord and reports the
// remaining budget and reset moment observed under the same lock.
func (l *Limiter) Admit(key string, cfg Config) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	timestamps := l.prune(key, cfg, now)

	d := Decision{Limited: len(timestamps) >= cfg.MaxRequests}
	if !d.Limited {
		timestamps = append(timestamps, now)
		l.records[key] = timestamps
	}

	d.Remaining = max(cfg.MaxRequests-len(timestamps), 0)
	d.ResetAt = now
	if len(timestamps) > 0 {
		d.ResetAt = timestamps[0].Add(cfg.Window)
	}
	return d
}

// Remaining returns how many requests key may still make in the current window.
func (l *Limiter) Remaining(key string, cfg Config) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	remaining := cfg.MaxRequests - len(l.prune(key, cfg, l.now()))
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ResetAt returns the moment the oldest request in the window expires.
// For a key without requests it is now.
func (l *Limiter) ResetAt(key string, cfg Config) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	timestamps := l.prune(key, cfg, now)
	if len(timestamps) == 0 {
		return now
	}
	return timestamps[0].Add(cfg.Window)
}

// Reset удаляет все записи для ключа
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.records, key)
}

// Sweep drops every key whose newest request is older than window and
// returns how many keys were removed.
func (l *Limiter) Sweep(window time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-window)
	removed := 0
	for key, timestamps := range l.records {
		if len(timestamps) == 0 || !timestamps[len(timestamps)-1].After(cutoff) {
			delete(l.records, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.records)
}

// prune отбрасывает timestamps старше now - window. Вызывается под l.mu.
func (l *Limiter) prune(key string, cfg Config, now time.Time) []time.Time {
	timestamps, ok := l.records[key]
	if !ok {
		return nil
	}

	cutoff := now.Add(-cfg.Window)
	idx := 0
	for idx < len(timestamps) && !timestamps[idx].After(cutoff) {
		idx++
	}
	if idx == 0 {
		return timestamps
	}

	pruned := append(timestamps[:0:0], timestamps[idx:]...)
	l.records[key] = pruned
	return pruned
}
