package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/trackkeeper/internal/config"
	"github.com/iudanet/trackkeeper/internal/ratelimit"
	"github.com/iudanet/trackkeeper/internal/server/handlers"
	"github.com/iudanet/trackkeeper/internal/server/middleware"
	"github.com/iudanet/trackkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// authRequestsPerWindow лимит на регистрацию и вход с одного адреса
const authRequestsPerWindow = 10

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("trackkeeper-server", flag.ContinueOnError)
	cfg, err := config.ParseServer(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		return 1
	}
	logger.Info("server stopped")
	return 0
}

func serve(ctx context.Context, cfg config.Server, logger *slog.Logger) error {
	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close storage", slog.Any("error", err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	limiter := middleware.NewRateLimiter(logger, middleware.WithMetrics(metrics))
	defer limiter.Stop()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.TokenTTL,
	}
	handler := newHandler(cfg, logger, store, jwtConfig, limiter, metrics, registry)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("TrackKeeper server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", Version),
			slog.String("db", cfg.DBPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newHandler собирает маршруты и цепочку middleware:
// recovery -> cors -> metrics -> logging -> rate limit -> mux
func newHandler(
	cfg config.Server,
	logger *slog.Logger,
	store *sqlite.Storage,
	jwtConfig handlers.JWTConfig,
	limiter *middleware.RateLimiter,
	metrics *middleware.Metrics,
	registry *prometheus.Registry,
) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	recordsHandler := handlers.NewRecordsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, Version)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("POST /api/v1/collections/{collection}", requireAuth(http.HandlerFunc(recordsHandler.Insert)))
	mux.Handle("GET /api/v1/collections/{collection}", requireAuth(http.HandlerFunc(recordsHandler.List)))
	mux.Handle("PATCH /api/v1/collections/{collection}/{id}", requireAuth(http.HandlerFunc(recordsHandler.Update)))
	mux.Handle("DELETE /api/v1/collections/{collection}/{id}", requireAuth(http.HandlerFunc(recordsHandler.Delete)))
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	authLimit := ratelimit.Config{MaxRequests: authRequestsPerWindow, Window: cfg.RateLimitWindow}
	rateLimited := middleware.RateLimitByPathMiddleware(limiter, []middleware.PathRateLimit{
		{Path: "/api/v1/auth/register", Config: authLimit},
		{Path: "/api/v1/auth/login", Config: authLimit},
	}, ratelimit.Config{MaxRequests: cfg.RateLimitRequests, Window: cfg.RateLimitWindow})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:         600,
	})

	var h http.Handler = mux
	h = rateLimited(h)
	h = middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/metrics"})(h)
	h = metrics.Middleware(h)
	h = corsHandler.Handler(h)
	h = middleware.RecoveryMiddleware(logger)(h)
	return h
}

func printVersion() {
	fmt.Printf("TrackKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
