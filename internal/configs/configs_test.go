package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL())
	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr())
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "tasks.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, 20*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://tasks@localhost/tasks")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.AppURL())
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://tasks@localhost/tasks", cfg.DatabaseDSN)
	assert.Equal(t, "cache.internal:6379", cfg.RedisAddr())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "DATABASE_DRIVER", "mssql"},
		{"zero rate limit", "RATE_LIMIT_PER_MINUTE", "0"},
		{"negative shutdown timeout", "SHUTDOWN_TIMEOUT_SECONDS", "-1"},
		{"sub-second ttl", "CACHE_TTL", "10ms"},
		{"bad log format", "LOG_FORMAT", "xml"},
		{"non numeric port", "APP_PORT", "http"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load(NewViper())
			assert.Error(t, err)
		})
	}
}

func TestNewDatabaseClient_UnknownDriver(t *testing.T) {
	_, err := NewDatabaseClient("oracle", "x")
	assert.Error(t, err)
}

func TestNewDatabaseClient_SQLite(t *testing.T) {
	db, err := NewDatabaseClient("sqlite", ":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.NoError(t, sqlDB.Ping())
}
