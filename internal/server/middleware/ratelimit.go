package middleware

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/trackkeeper/internal/ratelimit"
	"github.com/iudanet/trackkeeper/pkg/api"
)

// DefaultSweepInterval период очистки ключей с истекшими окнами
const DefaultSweepInterval = time.Minute

// unknownClient ключ для запросов без заголовков адреса клиента
const unknownClient = "unknown"

// RateLimiter ограничивает частоту запросов по адресу клиента.
// Окна скользящие (ratelimit.Limiter); ключ = класс маршрута + адрес.
// Фоновая горутина периодически удаляет ключи с истекшими окнами.
type RateLimiter struct {
	limiter   *ratelimit.Limiter
	logger    *slog.Logger
	metrics   *Metrics
	now       func() time.Time
	stopC     chan struct{}
	maxWindow time.Duration
	interval  time.Duration
	mu        sync.Mutex
	stopOnce  sync.Once
}

// RateLimiterOption настраивает RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithClock подменяет источник времени. Используется в тестах.
func WithClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// WithSweepInterval задает период очистки
func WithSweepInterval(interval time.Duration) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.interval = interval
	}
}

// WithMetrics включает подсчет отклоненных запросов
func WithMetrics(m *Metrics) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.metrics = m
	}
}

// NewRateLimiter создает rate limiter и запускает очистку.
// Остановить очистку нужно вызовом Stop.
func NewRateLimiter(logger *slog.Logger, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		logger:   logger,
		now:      time.Now,
		interval: DefaultSweepInterval,
		stopC:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}
	rl.limiter = ratelimit.NewWithClock(rl.now)

	if rl.interval > 0 {
		go rl.cleanup()
	}
	return rl
}

// cleanup периодически удаляет неактивные ключи для экономии памяти
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopC:
			return
		}
	}
}

func (rl *RateLimiter) sweep() int {
	rl.mu.Lock()
	window := rl.maxWindow
	rl.mu.Unlock()

	removed := rl.limiter.Sweep(window)
	if removed > 0 {
		rl.logger.Debug("rate limit keys swept", "removed", removed, "remaining", rl.limiter.Len())
	}
	return removed
}

// Stop останавливает cleanup goroutine. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopC)
	})
}

// track запоминает самое длинное окно, чтобы очистка не удаляла живые ключи
func (rl *RateLimiter) track(cfg ratelimit.Config) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if cfg.Window > rl.maxWindow {
		rl.maxWindow = cfg.Window
	}
}

// Allow учитывает запрос и выставляет заголовки X-RateLimit-*.
// Возвращает false, если запрос нужно отклонить; ответ 429 уже записан.
func (rl *RateLimiter) Allow(w http.ResponseWriter, r *http.Request, class string, cfg ratelimit.Config) bool {
	rl.track(cfg)
	key := class + ":" + getClientIP(r)

	d := rl.limiter.Admit(key, cfg)

	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

	if !d.Limited {
		return true
	}

	retryAfter := retryAfterSeconds(d.ResetAt.Sub(rl.now()))
	rl.logger.WarnContext(r.Context(), "Rate limit exceeded",
		"key", key,
		"method", r.Method,
		"path", r.URL.Path,
		"retry_after", retryAfter,
	)
	rl.metrics.observeRateLimited(r.URL.Path)

	h.Set("Retry-After", strconv.Itoa(retryAfter))
	h.Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   ratelimit.ErrRateLimited.Error(),
		Message: "please try again in " + strconv.Itoa(retryAfter) + "s",
	})
	return false
}

// retryAfterSeconds округляет вверх, минимум 1 секунда
func retryAfterSeconds(d time.Duration) int {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}

// RateLimitMiddleware создает middleware с одним лимитом для всех путей
func RateLimitMiddleware(rl *RateLimiter, class string, cfg ratelimit.Config) func(http.Handler) http.Handler {
	rl.track(cfg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(w, r, class, cfg) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PathRateLimit лимит для конкретного пути
type PathRateLimit struct {
	Path   string
	Config ratelimit.Config
}

// RateLimitByPathMiddleware создает middleware с кастомными лимитами для путей.
// Путь сравнивается точно; остальные пути делят лимит defaultCfg.
func RateLimitByPathMiddleware(rl *RateLimiter, limits []PathRateLimit, defaultCfg ratelimit.Config) func(http.Handler) http.Handler {
	byPath := make(map[string]ratelimit.Config, len(limits))
	for _, limit := range limits {
		byPath[limit.Path] = limit.Config
		rl.track(limit.Config)
	}
	rl.track(defaultCfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			class, cfg := "default", defaultCfg
			if pathCfg, ok := byPath[r.URL.Path]; ok {
				class, cfg = r.URL.Path, pathCfg
			}
			if !rl.Allow(w, r, class, cfg) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает адрес клиента для ключа лимита.
// X-Forwarded-For (первый адрес), затем X-Real-IP, иначе общий ключ "unknown".
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return unknownClient
}
