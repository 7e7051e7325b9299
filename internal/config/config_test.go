package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysProvidedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_algorithm":"RR","max_logs":128}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "RR", cfg.DefaultAlgorithm)
	assert.Equal(t, 128, cfg.MaxLogs)
	assert.Equal(t, Default().ListenAddr, cfg.ListenAddr, "unset fields keep their default")
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestQuantumOrDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2, cfg.QuantumOrDefault(99))

	var nilCfg *Config
	assert.Equal(t, 99, nilCfg.QuantumOrDefault(99))
}
