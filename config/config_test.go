package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("ANOMALY_COUNT", "")
	t.Setenv("GLOBAL_RISK_COUNT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 100, cfg.Dashboard.AnomalyCount)
	assert.Equal(t, 200, cfg.Dashboard.GlobalRiskCount)
	assert.Zero(t, cfg.Server.RateLimitRPS, "rate limiting is opt-in")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://dash.example.com ,")
	t.Setenv("RATE_LIMIT_RPS", "12.5")
	t.Setenv("ANOMALY_COUNT", "not-a-number")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, []string{"http://localhost:3000", "https://dash.example.com"}, cfg.Server.CORSOrigins)
	assert.InDelta(t, 12.5, cfg.Server.RateLimitRPS, 1e-9)
	assert.Equal(t, 100, cfg.Dashboard.AnomalyCount, "invalid integers fall back to the default")
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"non numeric port", func(c *Config) { c.Server.Port = "http" }},
		{"unknown environment", func(c *Config) { c.App.Environment = "qa" }},
		{"unknown log level", func(c *Config) { c.App.LogLevel = "trace" }},
		{"zero anomalies", func(c *Config) { c.Dashboard.AnomalyCount = 0 }},
		{"no cors origins", func(c *Config) { c.Server.CORSOrigins = nil }},
		{"cors origin without scheme", func(c *Config) { c.Server.CORSOrigins = []string{"dashboard.example.com"} }},
		{"cors origin with other scheme", func(c *Config) { c.Server.CORSOrigins = []string{"ftp://dashboard.example.com"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_RejectsOriginWithoutScheme(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,dashboard.example.com")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_AcceptsOrigins(t *testing.T) {
	cfg := validConfig()
	cfg.Server.CORSOrigins = []string{"http://localhost:3000", "https://dash.example.com"}
	assert.NoError(t, cfg.Validate())
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "5000",
			CORSOrigins:    []string{"*"},
			RateLimitBurst: 20,
		},
		Dashboard: DashboardConfig{AnomalyCount: 100, GlobalRiskCount: 200},
		App:       AppConfig{Environment: "test", LogLevel: "info", Version: "1.0.0"},
	}
}
