package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "development-secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("CACHE_SIZE", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "org")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 90*time.Minute, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, 1024, cfg.Cache.Size)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=org")
}

func TestValidateRequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	assert.Error(t, Load().Validate())
}
