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
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/trackkeeper/internal/client/api"
	"github.com/iudanet/trackkeeper/internal/client/auth"
	"github.com/iudanet/trackkeeper/internal/client/cli"
	"github.com/iudanet/trackkeeper/internal/client/connectivity"
	"github.com/iudanet/trackkeeper/internal/client/iocli"
	"github.com/iudanet/trackkeeper/internal/client/storage"
	"github.com/iudanet/trackkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/trackkeeper/internal/client/storage/memory"
	"github.com/iudanet/trackkeeper/internal/client/sync"
	"github.com/iudanet/trackkeeper/internal/client/tracker"
	"github.com/iudanet/trackkeeper/internal/config"
	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/ratelimit"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	stdio := iocli.NewStdio()

	fs := flag.NewFlagSet("trackkeeper", flag.ContinueOnError)
	fs.Usage = func() { cli.PrintUsage(stdio) }
	cfg, err := config.ParseClient(fs, os.Args[1:])
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

	args := fs.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(ctx, cfg.DBPath, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL)
	authService := auth.NewService(apiClient, auth.NewSessionStore(store), logger)

	// Очередь и трекер доступны только при известном владельце
	ownerID := cfg.UserID
	if session, err := authService.Restore(ctx); err == nil && ownerID == "" {
		ownerID = session.UserID
	}

	var opts []cli.Option
	var app *client
	if ownerID != "" {
		app = newClient(store, apiClient, ownerID, cfg, logger)
		defer app.close()
		opts = append(opts,
			cli.WithTracker(app.tracker, app.manager),
			cli.WithRemote(apiClient, app.monitor))
	}

	if command == "daemon" {
		if app == nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cli.ErrNotLoggedIn)
			return 1
		}
		if err := app.runDaemon(ctx, apiClient, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	c := cli.New(stdio, authService, opts...)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cli.IsUsageError(err) {
			cli.PrintUsage(stdio)
		}
		return 1
	}
	return 0
}

// openStore открывает bbolt; при ошибке работает на памяти (данные не переживут перезапуск)
func openStore(ctx context.Context, path string, logger *slog.Logger) storage.Store {
	bolt := boltdb.New(path, logger)
	if bolt.Initialize(ctx) {
		return bolt
	}

	logger.Warn("Durable store unavailable, falling back to memory", "path", path)
	mem := memory.New()
	mem.Initialize(ctx)
	return mem
}

// client связывает компоненты синхронизации одного владельца
type client struct {
	registry *prometheus.Registry
	monitor  *connectivity.Monitor
	manager  *sync.Manager
	tracker  *tracker.Service
	logger   *slog.Logger
}

func newClient(store storage.Store, apiClient *api.Client, ownerID string, cfg config.Client, logger *slog.Logger) *client {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	monitor := connectivity.NewMonitor(false, cfg.StabilizationDelay, logger)
	manager := sync.NewManager(store, apiClient, monitor, sync.Config{
		Metrics:           sync.NewMetrics(registry),
		OwnerID:           ownerID,
		MaxRetries:        cfg.MaxRetries,
		DebounceDelay:     cfg.DebounceDelay,
		CallTimeout:       cfg.CallTimeout,
		SyncInterval:      cfg.SyncInterval,
		FastFailPermanent: cfg.FastFailPermanent,
	}, logger)

	return &client{
		registry: registry,
		monitor:  monitor,
		manager:  manager,
		tracker:  tracker.NewService(store, manager, ratelimit.New(), ownerID, logger),
		logger:   logger,
	}
}

func (c *client) close() {
	c.manager.Close()
	c.monitor.Close()
}

// runDaemon синхронизирует очередь до сигнала остановки
func (c *client) runDaemon(ctx context.Context, apiClient *api.Client, cfg config.Client) error {
	c.monitor.OnReconnect(func(ctx context.Context) {
		if _, err := c.manager.ProcessSync(ctx); err != nil && !errors.Is(err, context.Canceled) {
			c.logger.Warn("Reconnect drain failed", "error", err)
		}
	})
	defer c.manager.OnSyncStatusChange(func(s sync.Status) {
		c.logger.Debug("Sync status", "syncing", s.IsSyncing, "pending", s.PendingCount)
	})()
	defer c.manager.OnFailedSyncChange(func(items []models.FailedOperation) {
		if len(items) > 0 {
			c.logger.Warn("Operations need attention", "failed", len(items))
		}
	})()

	c.logger.Info("Daemon started", "server", cfg.ServerURL, "probe_interval", cfg.ProbeInterval)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.monitor.Run(ctx, apiClient, cfg.ProbeInterval)
	})
	g.Go(func() error {
		return c.manager.Run(ctx)
	})

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err := g.Wait()
	c.logger.Info("Daemon stopped")
	return err
}

func printVersion() {
	fmt.Printf("TrackKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
