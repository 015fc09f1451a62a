package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.UIPort)
	assert.Equal(t, "8081", cfg.Server.APIPort)
	assert.Equal(t, 220, cfg.Data.RecordCount)
	assert.Equal(t, int64(0), cfg.Data.Seed)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.SimulatedLatency)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PULSEBOARD_UI_PORT", "9000")
	t.Setenv("PULSEBOARD_RECORD_COUNT", "50")
	t.Setenv("PULSEBOARD_SEED", "1234")
	t.Setenv("PULSEBOARD_SIMULATED_LATENCY", "0s")
	t.Setenv("PULSEBOARD_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.UIPort)
	assert.Equal(t, 50, cfg.Data.RecordCount)
	assert.Equal(t, int64(1234), cfg.Data.Seed)
	assert.Equal(t, time.Duration(0), cfg.UI.SimulatedLatency)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidRecordCount(t *testing.T) {
	t.Setenv("PULSEBOARD_RECORD_COUNT", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PULSEBOARD_RECORD_COUNT", "-5")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_YAMLFileAndEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulseboard.yaml")
	content := []byte("server:\n  ui_port: \"7000\"\n  api_port: \"7001\"\ndata:\n  record_count: 80\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("PULSEBOARD_CONFIG_PATH", path)
	t.Setenv("PULSEBOARD_API_PORT", "7777") // env wins over file

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.UIPort)
	assert.Equal(t, "7777", cfg.Server.APIPort)
	assert.Equal(t, 80, cfg.Data.RecordCount)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("PULSEBOARD_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
