package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehouse-state/pkg/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "APP_NAME", "LOG_LEVEL", "WAREHOUSE_FILE",
		"HTTP_HOST", "HTTP_PORT", "JWT_SECRET", "JWT_EXPIRATION_MINUTES", "JWT_ISSUER", "SWAGGER_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, config.DefaultWarehouseFile, cfg.Storage.FilePath)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.False(t, cfg.JWT.Enabled(), "sin JWT_SECRET el API queda abierto")
}

func TestLoad_DesdeVariablesDeEntorno(t *testing.T) {
	clearEnv(t)
	t.Setenv("WAREHOUSE_FILE", "/var/lib/warehouse/state.json")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/warehouse/state.json", cfg.Storage.FilePath)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.JWT.Enabled())
}

func TestLoad_PuertoFueraDeRango_RetornaError(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_PuertoNoNumerico_UsaDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "abc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}
