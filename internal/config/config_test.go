package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/sharevault")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "postgres://localhost/sharevault", cfg.DatabaseURL)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 500, cfg.EventsPageLimit)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("JWT_ACCESS_EXPIRY", "1h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EVENTS_PAGE_LIMIT", "100")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 100, cfg.EventsPageLimit)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")
	t.Setenv("EVENTS_PAGE_LIMIT", "-3")
	t.Setenv("LOG_LEVEL", "loud")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 500, cfg.EventsPageLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_MissingSecretPanics(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	assert.Panics(t, func() { _, _ = Load() })
}
