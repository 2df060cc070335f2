package config

import (
	"flag"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseClient_Defaults(t *testing.T) {
	cfg, err := ParseClient(newFlagSet(), []string{"status"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "trackkeeper-client.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
	assert.Equal(t, 2*time.Second, cfg.StabilizationDelay)
	assert.False(t, cfg.FastFailPermanent)
}

func TestParseClient_EnvThenFlags(t *testing.T) {
	t.Setenv("TRACKKEEPER_SERVER", "https://env.example.com")
	t.Setenv("TRACKKEEPER_DB", "/tmp/env.db")
	t.Setenv("TRACKKEEPER_MAX_RETRIES", "5")
	t.Setenv("TRACKKEEPER_FAST_FAIL_PERMANENT", "true")

	fs := newFlagSet()
	cfg, err := ParseClient(fs, []string{"--server", "https://flag.example.com", "sync"})
	require.NoError(t, err)

	// Флаг перекрывает переменную окружения
	assert.Equal(t, "https://flag.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.True(t, cfg.FastFailPermanent)
	assert.Equal(t, []string{"sync"}, fs.Args())
}

func TestParseClient_Errors(t *testing.T) {
	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("TRACKKEEPER_MAX_RETRIES", "many")
		_, err := ParseClient(newFlagSet(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("negative retries", func(t *testing.T) {
		_, err := ParseClient(newFlagSet(), []string{"--max-retries", "-1"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := ParseClient(newFlagSet(), []string{"--bogus"})
		assert.Error(t, err)
	})
}

func TestParseServer(t *testing.T) {
	t.Setenv("TRACKKEEPER_JWT_SECRET", "0123456789abcdef-secret")
	t.Setenv("TRACKKEEPER_CORS_ORIGINS", "http://a.example,http://b.example")

	cfg, err := ParseServer(newFlagSet(), []string{"--addr", ":9090"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
}

func TestParseServer_Validation(t *testing.T) {
	_, err := ParseServer(newFlagSet(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig, "jwt secret is required")

	t.Setenv("TRACKKEEPER_JWT_SECRET", "0123456789abcdef-secret")
	_, err = ParseServer(newFlagSet(), []string{"--rate-limit", "0"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	// --version не требует секрета
	t.Setenv("TRACKKEEPER_JWT_SECRET", "")
	cfg, err := ParseServer(newFlagSet(), []string{"--version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}
