package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		DataBackend:      "memory",
		LogLevel:         "warn",
		LogFormat:        "text",
		CurrencyDecimals: 2,
		ShutdownTimeout:  5 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid memory backend config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid sqlite backend config",
			mutate: func(c *Config) { c.DataBackend = "sqlite" },
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [memory sqlite]",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "invalid log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name:        "log file in missing directory",
			mutate:      func(c *Config) { c.LogFile = filepath.Join("/definitely/not/here", "ledger.log") },
			wantErr:     true,
			errorString: "log file directory does not exist",
		},
		{
			name:        "currency decimals too high",
			mutate:      func(c *Config) { c.CurrencyDecimals = 9 },
			wantErr:     true,
			errorString: "invalid currency decimals 9",
		},
		{
			name:        "currency decimals negative",
			mutate:      func(c *Config) { c.CurrencyDecimals = -1 },
			wantErr:     true,
			errorString: "invalid currency decimals -1",
		},
		{
			name:        "shutdown timeout too long",
			mutate:      func(c *Config) { c.ShutdownTimeout = 2 * time.Minute },
			wantErr:     true,
			errorString: "must be at most 1 minute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{DataBackend: "nope", LogLevel: "nope", LogFormat: "nope", CurrencyDecimals: 99}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "invalid data backend")
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Contains(t, err.Error(), "invalid log format")
	assert.Contains(t, err.Error(), "invalid currency decimals")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LEDGER_BACKEND", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "CURRENCY_DECIMALS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "memory", cfg.DataBackend)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 2, cfg.CurrencyDecimals)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LEDGER_BACKEND", "sqlite")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "ledger.log"))
	t.Setenv("CURRENCY_DECIMALS", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DataBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3, cfg.CurrencyDecimals)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("CURRENCY_DECIMALS", "two")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 2, cfg.CurrencyDecimals)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}
