package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "isp-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotZero(t, cfg.HTTP.ReadTimeout)
	assert.NotZero(t, cfg.HTTP.MaxBodySize)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ISP_STORAGE_DRIVER", "redis")
	t.Setenv("ISP_APP_PORT", "9090")
	t.Setenv("ISP_REDIS_HOST", "cache.internal")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("ISP_STORAGE_DRIVER", "cassandra")

	_, err := Load()

	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "postgres", Password: "secret",
		DBName: "isp", SSLMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=isp sslmode=disable", d.DSN())
}
