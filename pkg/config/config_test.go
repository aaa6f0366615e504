package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supply-manager/supply-admin/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "supply-admin", cfg.App.Name)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout())
	assert.NotEmpty(t, cfg.Auth.TokenFile, "siempre hay una ruta de token, aunque no esté configurada")
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "https://api.interna:9090/")
	t.Setenv("API_TIMEOUT_SECONDS", "15")
	t.Setenv("AUTH_TOKEN_FILE", "/tmp/supply-admin-token")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "https://api.interna:9090", cfg.API.BaseURL,
		"la barra final se recorta para concatenar rutas")
	assert.Equal(t, 15*time.Second, cfg.API.Timeout())
	assert.Equal(t, "/tmp/supply-admin-token", cfg.Auth.TokenFile)
}
