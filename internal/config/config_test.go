package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8800, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "https://stats.bis.org/api/v2/data", cfg.BIS.BaseURL)
	assert.Equal(t, "dataflow", cfg.BIS.Context)
	assert.Equal(t, "BIS", cfg.BIS.AgencyID)
	assert.Equal(t, "+", cfg.BIS.Version)
	assert.Equal(t, 20, cfg.BIS.Timeout)

	assert.Equal(t, "Source: BIS, HedgeAnalytics", cfg.Chart.SourceNote)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "stdout", cfg.Telemetry.Exporter)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("BIS_BASE_URL", "http://localhost:9999/data")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/data", cfg.BIS.BaseURL)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 8800},
			BIS:       BISConfig{BaseURL: "https://stats.bis.org/api/v2/data", Timeout: 20},
			Telemetry: TelemetryConfig{Exporter: "stdout"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "empty base url", mutate: func(c *Config) { c.BIS.BaseURL = "" }, wantErr: true},
		{name: "non-positive timeout", mutate: func(c *Config) { c.BIS.Timeout = 0 }, wantErr: true},
		{name: "bad exporter", mutate: func(c *Config) { c.Telemetry.Exporter = "jaeger" }, wantErr: true},
		{name: "otlp exporter", mutate: func(c *Config) { c.Telemetry.Exporter = "otlp" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
