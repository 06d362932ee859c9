// Package config loads the price comparator configuration from defaults, an
// optional YAML file, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PRICE_COMPARATOR_SERVER_PORT
const EnvPrefix = "PRICE_COMPARATOR"

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Data      DataConfig      `mapstructure:"data"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Alerts    AlertsConfig    `mapstructure:"alerts"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds database connection configuration.
// An empty URL selects the in-memory catalog.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxConnections  int           `mapstructure:"max_connections"`
	MinConnections  int           `mapstructure:"min_connections"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// DataConfig locates the price files
type DataConfig struct {
	Dir string `mapstructure:"dir"`
	// IngestOnStart loads Dir into the catalog when the server starts
	IngestOnStart     bool `mapstructure:"ingest_on_start"`
	IngestConcurrency int  `mapstructure:"ingest_concurrency"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// RateLimitConfig holds per-client rate limiting for /api
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// AlertsConfig holds the optional alert sweeper settings
type AlertsConfig struct {
	// SweepSchedule is a cron expression; empty disables the sweeper
	SweepSchedule string        `mapstructure:"sweep_schedule"`
	SweepTimeout  time.Duration `mapstructure:"sweep_timeout"`
}

// AuthConfig holds API authentication settings
type AuthConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// TelemetryConfig holds OpenTelemetry settings
type TelemetryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"service_name"`
	Environment string  `mapstructure:"environment"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// ErrInvalidConfig is returned when a configuration value fails validation
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

var globalConfig *Config

// Load loads the configuration from file, .env, and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// .env is optional
	if err := loadEnvFile(); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	globalConfig = &cfg
	return &cfg, nil
}

// loadEnvFile loads the first .env found. Existing environment variables win.
func loadEnvFile() error {
	for _, dir := range []string{".", "./config"} {
		envFile := filepath.Join(dir, ".env")
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		return nil
	}
	return fmt.Errorf("no .env file found")
}

// bindEnvVars binds conventional unprefixed variables to config keys
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("server.host", EnvPrefix+"_SERVER_HOST", "HOST")
	_ = v.BindEnv("logging.level", EnvPrefix+"_LOGGING_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("data.dir", EnvPrefix+"_DATA_DIR", "DATA_DIR")
	_ = v.BindEnv("auth.api_key", EnvPrefix+"_AUTH_API_KEY", "API_KEY")
	_ = v.BindEnv("telemetry.endpoint", EnvPrefix+"_TELEMETRY_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_connections", 25)
	v.SetDefault("database.min_connections", 2)
	v.SetDefault("database.max_conn_lifetime", 1*time.Hour)
	v.SetDefault("database.max_conn_idle_time", 30*time.Minute)

	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.ingest_on_start", true)
	v.SetDefault("data.ingest_concurrency", 4)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.no_color", false)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)

	v.SetDefault("alerts.sweep_schedule", "")
	v.SetDefault("alerts.sweep_timeout", time.Minute)

	v.SetDefault("auth.api_key", "")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "price-comparator")
	v.SetDefault("telemetry.environment", "production")
	v.SetDefault("telemetry.sample_ratio", 1.0)
}

// Validate checks value ranges that would otherwise fail at runtime
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return ErrInvalidConfig{Field: "server.port", Reason: "must be between 1 and 65535"}
	}
	if c.Database.URL != "" {
		if c.Database.MaxConnections < 1 {
			return ErrInvalidConfig{Field: "database.max_connections", Reason: "must be positive"}
		}
		if c.Database.MinConnections < 0 || c.Database.MinConnections > c.Database.MaxConnections {
			return ErrInvalidConfig{Field: "database.min_connections", Reason: "must be between 0 and max_connections"}
		}
	}
	if c.Data.IngestConcurrency < 1 {
		return ErrInvalidConfig{Field: "data.ingest_concurrency", Reason: "must be positive"}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return ErrInvalidConfig{Field: "logging.format", Reason: "must be json or console"}
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1) {
		return ErrInvalidConfig{Field: "rate_limit", Reason: "requests_per_second and burst must be positive"}
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return ErrInvalidConfig{Field: "telemetry.endpoint", Reason: "required when telemetry is enabled"}
	}
	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return ErrInvalidConfig{Field: "telemetry.sample_ratio", Reason: "must be between 0 and 1"}
	}
	return nil
}

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}
