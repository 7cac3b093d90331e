package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DEMO_MODE", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "demo123", cfg.Demo.Password)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "postgres://postgres:@localhost:5432/superventas?sslmode=disable", cfg.DB.ConnectionString())
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_TIMEOUT_SECONDS", "3")
	t.Setenv("DEMO_SEED", "42")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/pos")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, uint64(42), cfg.Demo.Seed)
	assert.Equal(t, "postgres://u:p@db/pos", cfg.DB.ConnectionString())
}

func TestLoad_TimeoutInvalido(t *testing.T) {
	t.Setenv("API_TIMEOUT_SECONDS", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestEnvModeSwitch_LeeEnCadaLlamada(t *testing.T) {
	sw := NewEnvModeSwitch()

	t.Setenv("DEMO_MODE", "true")
	assert.True(t, sw.IsDemoActive())

	t.Setenv("DEMO_MODE", "TRUE")
	assert.False(t, sw.IsDemoActive())

	t.Setenv("DEMO_MODE", "false")
	assert.False(t, sw.IsDemoActive())

	t.Setenv("DEMO_MODE", "true")
	assert.True(t, sw.IsDemoActive())
}
