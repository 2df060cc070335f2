// Package retry executes fallible remote actions with bounded retries and
// exponential backoff plus jitter, and classifies which failures are worth
// retrying.
package retry

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// Config controls the retry loop. Total attempts are MaxRetries + 1.
type Config struct {
	// RetryPredicate, если задан, полностью заменяет IsRetryable
	RetryPredicate    func(err error) bool
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

// DefaultConfig returns the configuration used for interactive remote calls.
func DefaultConfig() Config {
	return Config{
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          30 * time.Second,
		BackoffMultiplier: 2,
	}
}

// Do runs action until it succeeds, fails with a non-retryable error, or the
// retry budget is spent. The last error is returned unchanged. Cancelling ctx
// while waiting between attempts ends the loop with ctx.Err().
func Do[T any](ctx context.Context, cfg Config, action func(ctx context.Context) (T, error)) (T, error) {
	shouldRetry := cfg.RetryPredicate
	if shouldRetry == nil {
		shouldRetry = IsRetryable
	}

	for attempt := 0; ; attempt++ {
		result, err := action(ctx)
		if err == nil {
			return result, nil
		}

		if attempt >= cfg.MaxRetries || !shouldRetry(err) {
			return result, err
		}

		timer := time.NewTimer(withJitter(Backoff(cfg, attempt)))
		select {
		case <-ctx.Done():
			timer.Stop()
			var zero T
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

// Wrap returns fn decorated with Do. The argument is forwarded unchanged.
func Wrap[A, T any](cfg Config, fn func(ctx context.Context, arg A) (T, error)) func(ctx context.Context, arg A) (T, error) {
	return func(ctx context.Context, arg A) (T, error) {
		return Do(ctx, cfg, func(ctx context.Context) (T, error) {
			return fn(ctx, arg)
		})
	}
}

// Backoff returns min(BaseDelay * BackoffMultiplier^attempt, MaxDelay),
// the wait before attempt+1 without jitter.
func Backoff(cfg Config, attempt int) time.Duration {
	multiplier := cfg.BackoffMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	delay := float64(cfg.BaseDelay) * math.Pow(multiplier, float64(attempt))
	if cfg.MaxDelay > 0 && delay > float64(cfg.MaxDelay) {
		return cfg.MaxDelay
	}
	if delay > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(delay)
}

// withJitter добавляет к задержке случайные 10-30% сверху
func withJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	factor := 0.1 + rand.Float64()*0.2
	return delay + time.Duration(float64(delay)*factor)
}
