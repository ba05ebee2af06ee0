package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "black-forest-labs/FLUX.1-schnell", cfg.Gateway.Model)
	assert.Equal(t, "HF_TOKEN", cfg.Gateway.TokenParam)
	assert.Zero(t, cfg.Gateway.Timeout)
	assert.Equal(t, 2048, cfg.Limits.MaxDimension)
	assert.Equal(t, 256, cfg.Limits.MinDimension)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fluxgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
gateway:
  model: some-org/some-model
  timeout: 90s
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "some-org/some-model", cfg.Gateway.Model)
	assert.Equal(t, 90*time.Second, cfg.Gateway.Timeout)
	// untouched keys keep defaults
	assert.Equal(t, "https://api-inference.huggingface.co", cfg.Gateway.BaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FLUXGATE_ADDR", ":7000")
	t.Setenv("FLUXGATE_MODEL", "env-org/env-model")
	t.Setenv("FLUXGATE_TIMEOUT", "2m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "env-org/env-model", cfg.Gateway.Model)
	assert.Equal(t, 2*time.Minute, cfg.Gateway.Timeout)
}

func TestBadTimeout(t *testing.T) {
	t.Setenv("FLUXGATE_TIMEOUT", "not-a-duration")
	_, err := Load("")
	assert.Error(t, err)
}
