package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "arena")
	t.Setenv("POSTGRES_PASSWORD", "arena")
	t.Setenv("POSTGRES_DB", "arena")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	// isolate from whatever the host environment carries
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_USER", "")
	t.Setenv("DB_MAX_CONN_LIFETIME", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Admin", cfg.AdminUser)
	assert.Equal(t, "disable", cfg.PostgresSSLMode)
	assert.Equal(t, int32(25), cfg.MaxConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load("does-not-exist.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "3001")
	t.Setenv("ADMIN_USER", "jury")
	t.Setenv("DB_MAX_CONN_LIFETIME", "10m")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "jury", cfg.AdminUser)
	assert.Equal(t, 10*time.Minute, cfg.MaxConnLifetime)
}
