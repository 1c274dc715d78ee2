package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config aggregates all configuration settings for the application.
type Config struct {
	// Environment indicates the running environment (e.g., "development", "production").
	Environment string `mapstructure:"environment"`
	// LogLevel sets the global logging verbosity.
	LogLevel string `mapstructure:"log_level"`
	// Server holds configuration for the HTTP server.
	Server ServerConfig `mapstructure:"server"`
	// BIS holds configuration for the upstream BIS statistics API.
	BIS BISConfig `mapstructure:"bis"`
	// Chart holds configuration for chart rendering.
	Chart ChartConfig `mapstructure:"chart"`
	// Telemetry holds configuration for OpenTelemetry integration.
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig defines the HTTP server settings.
type ServerConfig struct {
	// Port is the TCP port the server listens on.
	Port int `mapstructure:"port"`
	// AllowedOrigins is a list of CORS allowed origins. "*" allows all,
	// which is what the dashboard host expects by default.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BISConfig defines settings for the BIS SDMX REST API.
type BISConfig struct {
	// BaseURL is the root of the BIS data API. Tests point this at a stub server.
	BaseURL string `mapstructure:"base_url"`
	// Context is the SDMX context path segment (normally "dataflow").
	Context string `mapstructure:"context"`
	// AgencyID is the SDMX agency identifier.
	AgencyID string `mapstructure:"agency_id"`
	// Version is the dataflow version segment ("+" selects the latest).
	Version string `mapstructure:"version"`
	// Timeout is the fetch timeout in seconds. The upstream call is a single
	// attempt on an interactive path, so this must stay bounded.
	Timeout int `mapstructure:"timeout"`
}

// ChartConfig defines settings for rendered figures.
type ChartConfig struct {
	// SourceNote is the attribution footnote added to every figure.
	SourceNote string `mapstructure:"source_note"`
	// LogoURL is the image placed in the bottom-right corner of figures.
	LogoURL string `mapstructure:"logo_url"`
}

// TelemetryConfig defines settings for OpenTelemetry tracing.
type TelemetryConfig struct {
	// Enabled controls whether tracing is active.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the span exporter: "otlp" or "stdout".
	Exporter string `mapstructure:"exporter"`
	// OTLPEndpoint is the OTLP/HTTP collector endpoint.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	// ServiceName is the name of the service for tracing.
	ServiceName string `mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `mapstructure:"service_version"`
}

// Load reads the configuration from config.yaml, .env and environment variables.
//
// Returns:
//
//	*Config: The loaded configuration structure.
//	error: An error if the configuration could not be parsed or validated.
func Load() (*Config, error) {
	// Local development convenience; absence of a .env file is not an error.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	// Enable environment variable support
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Bind upstream service environment variables
	_ = viper.BindEnv("bis.base_url", "BIS_BASE_URL")
	_ = viper.BindEnv("telemetry.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus environment carry it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers default values for all configuration keys.
func setDefaults() {
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	viper.SetDefault("server.port", 8800)
	viper.SetDefault("server.allowed_origins", []string{"*"})

	viper.SetDefault("bis.base_url", "https://stats.bis.org/api/v2/data")
	viper.SetDefault("bis.context", "dataflow")
	viper.SetDefault("bis.agency_id", "BIS")
	viper.SetDefault("bis.version", "+")
	viper.SetDefault("bis.timeout", 20)

	viper.SetDefault("chart.source_note", "Source: BIS, HedgeAnalytics")
	viper.SetDefault("chart.logo_url", "https://raw.githubusercontent.com/ThresholdMacro/ThresholdMacro/main/Images/Sphere_no_letters.png")

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.exporter", "stdout")
	viper.SetDefault("telemetry.otlp_endpoint", "localhost:4318")
	viper.SetDefault("telemetry.service_name", "bis-widgets-go")
	viper.SetDefault("telemetry.service_version", "1.0.0")
}

// validateConfig checks that the loaded configuration is usable.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.BIS.BaseURL == "" {
		return fmt.Errorf("bis.base_url must not be empty")
	}
	if cfg.BIS.Timeout <= 0 {
		return fmt.Errorf("bis.timeout must be positive, got %d", cfg.BIS.Timeout)
	}
	switch cfg.Telemetry.Exporter {
	case "otlp", "stdout":
	default:
		return fmt.Errorf("unknown telemetry exporter: %q", cfg.Telemetry.Exporter)
	}
	return nil
}
