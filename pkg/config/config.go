package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y
// opcionalmente archivo .env).
type Config struct {
	App  AppConfig
	API  APIConfig
	Auth AuthConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig ubicación de la API REST de supply-manager.
type APIConfig struct {
	BaseURL        string // ej. http://localhost:8080
	TimeoutSeconds int    // timeout del transporte; no hay timeout por operación
}

// Timeout devuelve el timeout del cliente HTTP.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AuthConfig sesión persistida en el cliente.
type AuthConfig struct {
	TokenFile string // archivo donde se guarda el token Bearer
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// API_BASE_URL, API_TIMEOUT_SECONDS, AUTH_TOKEN_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "supply-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 30),
		},
		Auth: AuthConfig{
			TokenFile: getString(v, "AUTH_TOKEN_FILE", ""),
		},
	}

	if cfg.Auth.TokenFile == "" {
		cfg.Auth.TokenFile = defaultTokenFile()
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL no puede estar vacío")
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	return cfg, nil
}

// defaultTokenFile ubica el token en el home del usuario (análogo al
// localStorage del navegador); si no hay home, en el directorio actual.
func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".supply-admin-token"
	}
	return filepath.Join(home, ".supply-admin", "token")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
