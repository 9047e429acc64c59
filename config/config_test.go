package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "development", cfg.Environment)
				assert.True(t, cfg.IsDevelopment())
				assert.Equal(t, "http://localhost:8080/api/v1", cfg.API.BaseURL)
				assert.Equal(t, "default-tenant-id", cfg.API.TenantID)
				assert.Equal(t, 30*time.Second, cfg.API.Timeout)
				assert.NotEmpty(t, cfg.Storage.TokenPath)
				assert.Equal(t, "info", cfg.Observability.LogLevel)
			},
		},
		{
			name: "environment overrides",
			envVars: map[string]string{
				"ENVIRONMENT":  "production",
				"API_BASE_URL": "https://api.rentora.app/api/v1",
				"TENANT_ID":    "tenant-7",
				"API_TIMEOUT":  "5s",
				"TOKEN_PATH":   "/tmp/rentora-token",
				"LOG_LEVEL":    "debug",
				"LOG_FORMAT":   "text",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.IsProduction())
				assert.Equal(t, "https://api.rentora.app/api/v1", cfg.API.BaseURL)
				assert.Equal(t, "tenant-7", cfg.API.TenantID)
				assert.Equal(t, 5*time.Second, cfg.API.Timeout)
				assert.Equal(t, "/tmp/rentora-token", cfg.Storage.TokenPath)
				assert.Equal(t, "debug", cfg.Observability.LogLevel)
				assert.Equal(t, "text", cfg.Observability.LogFormat)
			},
		},
		{
			name: "invalid timeout falls back to the default",
			envVars: map[string]string{
				"API_TIMEOUT": "soon",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 30*time.Second, cfg.API.Timeout)
			},
		},
		{
			name: "invalid base URL is rejected",
			envVars: map[string]string{
				"API_BASE_URL": "not a url",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := New()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.API.BaseURL = "http://localhost:8080/api/v1"
	assert.Error(t, cfg.Validate(), "token path still missing")

	cfg.Storage.TokenPath = "/tmp/token"
	assert.NoError(t, cfg.Validate())
}
