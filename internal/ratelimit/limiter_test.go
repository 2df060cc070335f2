package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock управляемые часы для тестов
type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLimiter_CheckAndRecord(t *testing.T) {
	cfg := Config{MaxRequests: 3, Window: time.Minute}

	t.Run("First M requests pass, M+1 is limited", func(t *testing.T) {
		clock := newFakeClock()
		limiter := NewWithClock(clock.Now)

		for i := 0; i < cfg.MaxRequests; i++ {
			assert.False(t, limiter.CheckAndRecord("write:entries", cfg), fmt.Sprintf("request %d should pass", i+1))
		}
		assert.True(t, limiter.CheckAndRecord("write:entries", cfg), "request over limit should be limited")
	})

	t.Run("Window elapses and requests pass again", func(t *testing.T) {
		clock := newFakeClock()
		limiter := NewWithClock(clock.Now)

		for i := 0; i < cfg.MaxRequests; i++ {
			require.False(t, limiter.CheckAndRecord("k", cfg))
		}
		require.True(t, limiter.CheckAndRecord("k", cfg))

		clock.Advance(cfg.Window + time.Millisecond)
		assert.False(t, limiter.CheckAndRecord("k", cfg))
	})

	t.Run("Sliding window frees slots one by one", func(t *testing.T) {
		clock := newFakeClock()
		limiter := NewWithClock(clock.Now)

		require.False(t, limiter.CheckAndRecord("k", cfg))
		clock.Advance(20 * time.Second)
		require.False(t, limiter.CheckAndRecord("k", cfg))
		clock.Advance(20 * time.Second)
		require.False(t, limiter.CheckAndRecord("k", cfg))
		require.True(t, limiter.CheckAndRecord("k", cfg))

		// Первый запрос выходит из окна, освобождается ровно один слот
		clock.Advance(21 * time.Second)
		assert.False(t, limiter.CheckAndRecord("k", cfg))
		assert.True(t, limiter.CheckAndRecord("k", cfg))
	})

	t.Run("Limited requests are not recorded", func(t *testing.T) {
		clock := newFakeClock()
		limiter := NewWithClock(clock.Now)
		one := Config{MaxRequests: 1, Window: time.Minute}

		require.False(t, limiter.CheckAndRecord("k", one))
		for i := 0; i < 5; i++ {
			require.True(t, limiter.CheckAndRecord("k", one))
		}

		limiter.mu.Lock()
		count := len(limiter.records["k"])
		limiter.mu.Unlock()
		assert.Equal(t, 1, count)
	})

	t.Run("Different keys are tracked separately", func(t *testing.T) {
		limiter := NewWithClock(newFakeClock().Now)
		one := Config{MaxRequests: 1, Window: time.Minute}

		assert.False(t, limiter.CheckAndRecord("create:tasks", one))
		assert.True(t, limiter.CheckAndRecord("create:tasks", one))
		assert.False(t, limiter.CheckAndRecord("create:habits", one))
	})
}

func TestLimiter_Remaining(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(clock.Now)
	cfg := Config{MaxRequests: 4, Window: time.Minute}

	// Пустой ключ - полная квота
	assert.Equal(t, 4, limiter.Remaining("fresh", cfg))

	prev := limiter.Remaining("k", cfg)
	for i := 0; i < cfg.MaxRequests; i++ {
		require.False(t, limiter.CheckAndRecord("k", cfg))
		current := limiter.Remaining("k", cfg)
		assert.Equal(t, prev-1, current)
		prev = current
	}

	// Лимит исчерпан, remaining не уходит в минус
	assert.True(t, limiter.CheckAndRecord("k", cfg))
	assert.Equal(t, 0, limiter.Remaining("k", cfg))

	// Конфиг с меньшим лимитом не дает отрицательного значения
	assert.Equal(t, 0, limiter.Remaining("k", Config{MaxRequests: 2, Window: time.Minute}))

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 4, limiter.Remaining("k", cfg))
}

func TestLimiter_ResetAt(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(clock.Now)
	cfg := Config{MaxRequests: 2, Window: time.Minute}

	assert.Equal(t, clock.Now(), limiter.ResetAt("k", cfg))

	start := clock.Now()
	require.False(t, limiter.CheckAndRecord("k", cfg))
	clock.Advance(10 * time.Second)
	require.False(t, limiter.CheckAndRecord("k", cfg))

	assert.Equal(t, start.Add(time.Minute), limiter.ResetAt("k", cfg))
}

func TestLimiter_Reset(t *testing.T) {
	limiter := NewWithClock(newFakeClock().Now)
	cfg := Config{MaxRequests: 1, Window: time.Hour}

	require.False(t, limiter.CheckAndRecord("k", cfg))
	require.True(t, limiter.CheckAndRecord("k", cfg))

	limiter.Reset("k")
	assert.Equal(t, 1, limiter.Remaining("k", cfg))
	assert.False(t, limiter.CheckAndRecord("k", cfg))
}

func TestLimiter_Sweep(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(clock.Now)
	cfg := Config{MaxRequests: 10, Window: time.Minute}

	limiter.CheckAndRecord("old-1", cfg)
	limiter.CheckAndRecord("old-2", cfg)
	clock.Advance(50 * time.Second)
	limiter.CheckAndRecord("fresh", cfg)
	require.Equal(t, 3, limiter.Len())

	clock.Advance(15 * time.Second)
	removed := limiter.Sweep(cfg.Window)

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, limiter.Len())
	assert.Equal(t, 9, limiter.Remaining("fresh", cfg))
}

func TestPreset(t *testing.T) {
	for _, name := range []string{PresetWrite, PresetToggle, PresetCreate, PresetDelete, PresetFetch} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			require.NoError(t, err)
			assert.Positive(t, cfg.MaxRequests)
			assert.Positive(t, cfg.Window)
		})
	}

	_, err := Preset("unknown")
	assert.Error(t, err)
	assert.Panics(t, func() { MustPreset("unknown") })
	assert.Equal(t, "create:tasks", Key(PresetCreate, "tasks"))
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	limiter := New()
	cfg := Config{MaxRequests: 50, Window: time.Minute}

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !limiter.CheckAndRecord("shared", cfg) {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, admitted)
}

func TestLimiter_Admit(t *testing.T) {
	clock := newFakeClock()
	limiter := NewWithClock(clock.Now)
	cfg := Config{MaxRequests: 2, Window: time.Minute}
	start := clock.Now()

	d := limiter.Admit("k", cfg)
	assert.Equal(t, Decision{Limited: false, Remaining: 1, ResetAt: start.Add(time.Minute)}, d)

	clock.Advance(10 * time.Second)
	d = limiter.Admit("k", cfg)
	assert.Equal(t, Decision{Limited: false, Remaining: 0, ResetAt: start.Add(time.Minute)}, d)

	// Отклоненный запрос не записывается
	clock.Advance(10 * time.Second)
	d = limiter.Admit("k", cfg)
	assert.Equal(t, Decision{Limited: true, Remaining: 0, ResetAt: start.Add(time.Minute)}, d)
	assert.Equal(t, 0, limiter.Remaining("k", cfg))

	clock.Advance(41 * time.Second)
	d = limiter.Admit("k", cfg)
	assert.False(t, d.Limited)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, start.Add(10*time.Second+time.Minute), d.ResetAt)
}
