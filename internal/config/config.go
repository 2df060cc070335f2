// Package config loads client and server configuration from TRACKKEEPER_*
// environment variables with command line flag overrides.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range
var ErrInvalidConfig = errors.New("invalid config")

// Client holds client configuration.
type Client struct {
	ServerURL          string        `env:"TRACKKEEPER_SERVER"              envDefault:"http://localhost:8080"`
	DBPath             string        `env:"TRACKKEEPER_DB"                  envDefault:"trackkeeper-client.db"`
	UserID             string        `env:"TRACKKEEPER_USER_ID"`
	LogLevel           string        `env:"TRACKKEEPER_LOG_LEVEL"           envDefault:"warn"`
	MetricsAddr        string        `env:"TRACKKEEPER_METRICS_ADDR"`
	MaxRetries         int           `env:"TRACKKEEPER_MAX_RETRIES"         envDefault:"3"`
	DebounceDelay      time.Duration `env:"TRACKKEEPER_DEBOUNCE_DELAY"      envDefault:"500ms"`
	CallTimeout        time.Duration `env:"TRACKKEEPER_CALL_TIMEOUT"        envDefault:"30s"`
	SyncInterval       time.Duration `env:"TRACKKEEPER_SYNC_INTERVAL"       envDefault:"1m"`
	ProbeInterval      time.Duration `env:"TRACKKEEPER_PROBE_INTERVAL"      envDefault:"15s"`
	StabilizationDelay time.Duration `env:"TRACKKEEPER_STABILIZATION_DELAY" envDefault:"2s"`
	FastFailPermanent  bool          `env:"TRACKKEEPER_FAST_FAIL_PERMANENT"`
	ShowVersion        bool
}

// Server holds server configuration.
type Server struct {
	Addr              string        `env:"TRACKKEEPER_ADDR"                envDefault:":8080"`
	DBPath            string        `env:"TRACKKEEPER_SERVER_DB"           envDefault:"trackkeeper-server.db"`
	JWTSecret         string        `env:"TRACKKEEPER_JWT_SECRET"`
	LogLevel          string        `env:"TRACKKEEPER_LOG_LEVEL"           envDefault:"info"`
	CORSOrigins       []string      `env:"TRACKKEEPER_CORS_ORIGINS"        envSeparator:","`
	TokenTTL          time.Duration `env:"TRACKKEEPER_TOKEN_TTL"           envDefault:"24h"`
	RateLimitWindow   time.Duration `env:"TRACKKEEPER_RATE_LIMIT_WINDOW"   envDefault:"1m"`
	ShutdownTimeout   time.Duration `env:"TRACKKEEPER_SHUTDOWN_TIMEOUT"    envDefault:"10s"`
	RateLimitRequests int           `env:"TRACKKEEPER_RATE_LIMIT_REQUESTS" envDefault:"100"`
	ShowVersion       bool
}

// ParseClient parses environment variables and then flags into a Client config.
func ParseClient(fs *flag.FlagSet, args []string) (Client, error) {
	var cfg Client
	if err := env.Parse(&cfg); err != nil {
		return Client{}, fmt.Errorf("parse env: %w", err)
	}

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to local database")
	fs.StringVar(&cfg.UserID, "user-id", cfg.UserID, "Scope the local queue to this user")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Expose sync metrics on this address in daemon mode")
	fs.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "Failed attempts before an operation moves to failed")
	fs.DurationVar(&cfg.SyncInterval, "sync-interval", cfg.SyncInterval, "Periodic sync interval in daemon mode")
	if err := fs.Parse(args); err != nil {
		return Client{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Client) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("%w: server URL is required", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must not be negative", ErrInvalidConfig)
	}
	if c.DebounceDelay < 0 || c.CallTimeout < 0 || c.SyncInterval < 0 || c.ProbeInterval < 0 || c.StabilizationDelay < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ParseServer parses environment variables and then flags into a Server config.
func ParseServer(fs *flag.FlagSet, args []string) (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to server database")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "JWT signing secret")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "Access token lifetime")
	fs.IntVar(&cfg.RateLimitRequests, "rate-limit", cfg.RateLimitRequests, "Requests per window per client")
	fs.DurationVar(&cfg.RateLimitWindow, "rate-window", cfg.RateLimitWindow, "Rate limit window")
	if err := fs.Parse(args); err != nil {
		return Server{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (s Server) Validate() error {
	if s.ShowVersion {
		return nil
	}
	if len(s.JWTSecret) < 16 {
		return fmt.Errorf("%w: jwt secret must be at least 16 characters", ErrInvalidConfig)
	}
	if s.RateLimitRequests <= 0 || s.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalidConfig)
	}
	if s.TokenTTL <= 0 {
		return fmt.Errorf("%w: token ttl must be positive", ErrInvalidConfig)
	}
	return nil
}

// ParseLogLevel converts a level name into slog.Level. Unknown names map to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
