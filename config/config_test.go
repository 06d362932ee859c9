package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, 4, cfg.Data.IngestConcurrency)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Alerts.SweepSchedule)
	assert.Empty(t, cfg.Database.URL)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
data:
  dir: /srv/prices
alerts:
  sweep_schedule: "@every 5m"
logging:
  format: console
`)
	t.Setenv("PRICE_COMPARATOR_SERVER_PORT", "9100")
	t.Setenv("DATA_DIR", "/var/prices")
	t.Setenv("API_KEY", "secret")
	t.Setenv("PRICE_COMPARATOR_RATE_LIMIT_BURST", "5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "/var/prices", cfg.Data.Dir)
	assert.Equal(t, "secret", cfg.Auth.APIKey)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, "@every 5m", cfg.Alerts.SweepSchedule)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [unclosed\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:    ServerConfig{Port: 8080},
			Data:      DataConfig{IngestConcurrency: 1},
			Logging:   LoggingConfig{Format: "json"},
			RateLimit: RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1},
			Telemetry: TelemetryConfig{SampleRatio: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"pool size", func(c *Config) { c.Database.URL = "postgres://x"; c.Database.MaxConnections = 0 }, "database.max_connections"},
		{"min above max", func(c *Config) {
			c.Database.URL = "postgres://x"
			c.Database.MaxConnections = 2
			c.Database.MinConnections = 3
		}, "database.min_connections"},
		{"concurrency", func(c *Config) { c.Data.IngestConcurrency = 0 }, "data.ingest_concurrency"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"rate limit", func(c *Config) { c.RateLimit.Burst = 0 }, "rate_limit"},
		{"telemetry endpoint", func(c *Config) { c.Telemetry.Enabled = true }, "telemetry.endpoint"},
		{"sample ratio", func(c *Config) { c.Telemetry.SampleRatio = 2 }, "telemetry.sample_ratio"},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var invalid ErrInvalidConfig
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}

	t.Run("disabled rate limit skips check", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit = RateLimitConfig{Enabled: false}
		assert.NoError(t, cfg.Validate())
	})
}
