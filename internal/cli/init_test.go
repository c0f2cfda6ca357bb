package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketledger/internal/config"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LEDGER_BACKEND=sqlite\nCURRENCY_DECIMALS=3\n"), 0o644))
	// register cleanup for variables godotenv sets
	t.Setenv("LEDGER_BACKEND", "")
	t.Setenv("CURRENCY_DECIMALS", "")
	os.Unsetenv("LEDGER_BACKEND")
	os.Unsetenv("CURRENCY_DECIMALS")

	LoadEnvFile(path)

	cfg, err := LoadAndValidateConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DataBackend)
	assert.Equal(t, 3, cfg.CurrencyDecimals)
}

func TestLoadEnvFileMissingIsIgnored(t *testing.T) {
	assert.NotPanics(t, func() { LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")) })
}

func TestLoadAndValidateConfigFails(t *testing.T) {
	t.Setenv("LEDGER_BACKEND", "sheets")
	_, err := LoadAndValidateConfig()
	assert.ErrorContains(t, err, "invalid data backend")
}

func TestSetupLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.log")
	cfg := &config.Config{LogLevel: "info", LogFormat: "json", LogFile: path}

	logger, closer, err := SetupLogger(cfg)
	require.NoError(t, err)
	logger.Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
}

func TestSetupLoggerRejectsBadLevel(t *testing.T) {
	_, _, err := SetupLogger(&config.Config{LogLevel: "loud", LogFormat: "text"})
	assert.Error(t, err)
}
