// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env string `json:"env"`

	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
		MaxConns   int    `json:"max_conns"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port            string        `json:"port"`
		ReadTimeout     time.Duration `json:"read_timeout"`
		WriteTimeout    time.Duration `json:"write_timeout"`
		RequestTimeout  time.Duration `json:"request_timeout"`
		ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	} `json:"server"`
	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
	Cache struct {
		TTL  time.Duration `json:"ttl"`
		Size int           `json:"size"`
	} `json:"cache"`
	CORS struct {
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"cors"`
	Log struct {
		Level string `json:"level"`
	} `json:"log"`
	Metrics struct {
		Enabled bool `json:"enabled"`
	} `json:"metrics"`
}

func Load() *Config {
	cfg := &Config{}

	cfg.Env = getEnv("APP_ENV", "development")

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "structura")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 25)

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	cfg.JWT.ExpiryPeriod = getEnvDuration("JWT_EXPIRY", 24*time.Hour)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	cfg.Server.RequestTimeout = getEnvDuration("SERVER_REQUEST_TIMEOUT", 30*time.Second)
	cfg.Server.ShutdownTimeout = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)

	// Redis holds revoked tokens; empty address disables revocation
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.Cache.TTL = getEnvDuration("CACHE_TTL", 5*time.Minute)
	cfg.Cache.Size = getEnvInt("CACHE_SIZE", 1024)

	cfg.CORS.AllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", []string{"https://*", "http://*"})

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Metrics.Enabled = getEnvBool("METRICS_ENABLED", true)

	return cfg
}

// Validate reports configuration that would leave the API insecure or unusable.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		if c.Env != "development" {
			return errors.New("JWT_SECRET is required outside development")
		}
		c.JWT.Secret = "development-secret"
	}
	if c.JWT.ExpiryPeriod <= 0 {
		return errors.New("JWT_EXPIRY must be positive")
	}
	return nil
}

// DSN renders the database settings as a libpq keyword/value connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
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

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
