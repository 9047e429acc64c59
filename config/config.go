// Package config loads the console client's configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config is the complete client configuration.
type Config struct {
	API           APIConfig
	Storage       StorageConfig
	Observability ObservabilityConfig
	Environment   string
}

// APIConfig holds the backend connection settings.
type APIConfig struct {
	// BaseURL is the console backend's API root, e.g.
	// http://localhost:8080/api/v1.
	BaseURL string

	// TenantID is sent as the X-Tenant-ID header on auth requests.
	TenantID string

	// Timeout bounds each HTTP request; this layer adds no other timeouts.
	Timeout time.Duration
}

// StorageConfig holds durable client-side storage settings.
type StorageConfig struct {
	// TokenPath is the file the bearer token persists under.
	TokenPath string
}

// ObservabilityConfig holds logging configuration.
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string // json or text
}

// New loads configuration from the environment.
func New() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		API: APIConfig{
			BaseURL:  getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
			TenantID: getEnv("TENANT_ID", "default-tenant-id"),
			Timeout:  getEnvAsDuration("API_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			TokenPath: getEnv("TOKEN_PATH", defaultTokenPath()),
		},
		Observability: ObservabilityConfig{
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}
	if c.Storage.TokenPath == "" {
		return fmt.Errorf("token path is required")
	}
	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

// defaultTokenPath places the token under the user config dir, falling back
// to the working directory when the platform dir is unavailable.
func defaultTokenPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "rentora", "token")
	}
	return ".rentora-token"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
