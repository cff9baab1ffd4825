package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoledger/ecoledger/internal/engine"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Classifier.ModelPath)
	assert.False(t, cfg.NarrativeEnabled())
}

func TestLoadFile(t *testing.T) {
	const raw = `
logging:
  level: debug
  format: json
classifier:
  model_path: /models/activity_classifier.yaml
factors:
  Transport:
    rate: 0.19
    unit: kg/km
    source: DEFRA (2024)
  Refrigerants:
    rate: 1400
    unit: kg/kg
    source: IPCC AR6 GWP100
narrative:
  endpoint: https://narrative.example.com/v1/generate
  api_key: test-key
  timeout: 5s
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/models/activity_classifier.yaml", cfg.Classifier.ModelPath)
	assert.True(t, cfg.NarrativeEnabled())
	assert.Equal(t, 5*time.Second, cfg.Narrative.Timeout.Std())

	registry := cfg.Registry()

	// Overridden category.
	assert.Equal(t, 0.19, registry.Lookup(engine.CategoryTransport).Rate)
	// New category label registers rather than failing.
	assert.Equal(t, 1400.0, registry.Lookup(engine.Category("Refrigerants")).Rate)
	// Untouched built-ins remain.
	assert.Equal(t, 0.35, registry.Lookup(engine.CategoryEnergy).Rate)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::nope::"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvModelPath, "/opt/model.yaml")
	t.Setenv(EnvNarrativeEndpoint, "https://env.example.com")
	t.Setenv(EnvNarrativeAPIKey, "env-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/opt/model.yaml", cfg.Classifier.ModelPath)
	assert.Equal(t, "https://env.example.com", cfg.Narrative.Endpoint)
	assert.True(t, cfg.NarrativeEnabled())
}

func TestDefaultRegistryWithoutOverrides(t *testing.T) {
	cfg := Default()
	registry := cfg.Registry()

	assert.Equal(t, 0.21, registry.Lookup(engine.CategoryTransport).Rate)
	assert.Equal(t, 0.50, registry.Lookup(engine.Category("unknown label")).Rate)
}
