// Package config loads EcoLedger configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ecoledger/ecoledger/internal/engine"
	"github.com/ecoledger/ecoledger/internal/logging"
)

// Environment variable overrides. Values set here win over the config file.
const (
	EnvLogLevel          = "ECOLEDGER_LOG_LEVEL"
	EnvModelPath         = "ECOLEDGER_MODEL_PATH"
	EnvNarrativeEndpoint = "ECOLEDGER_NARRATIVE_ENDPOINT"
	EnvNarrativeAPIKey   = "ECOLEDGER_NARRATIVE_API_KEY"
)

// Config is the full application configuration.
type Config struct {
	Logging    LoggingConfig            `yaml:"logging"`
	Classifier ClassifierConfig         `yaml:"classifier"`
	Factors    map[string]engine.Factor `yaml:"factors"`
	Narrative  NarrativeConfig          `yaml:"narrative"`
}

// LoggingConfig mirrors logging.Config in the file format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ClassifierConfig selects the classification model artifact. An empty
// path means no model: the heuristic classifier is used.
type ClassifierConfig struct {
	ModelPath string `yaml:"model_path"`
}

// NarrativeConfig configures the optional external narrative service. The
// primary narrative path is active only when an API key is present.
type NarrativeConfig struct {
	Endpoint string   `yaml:"endpoint"`
	APIKey   string   `yaml:"api_key"`
	Timeout  Duration `yaml:"timeout"`
}

// Duration decodes YAML duration strings like "5s" or "250ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads configuration from path, starting from defaults. A missing
// file is not an error: defaults plus environment overrides apply. An
// unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvModelPath); v != "" {
		c.Classifier.ModelPath = v
	}
	if v := os.Getenv(EnvNarrativeEndpoint); v != "" {
		c.Narrative.Endpoint = v
	}
	if v := os.Getenv(EnvNarrativeAPIKey); v != "" {
		c.Narrative.APIKey = v
	}
}

// Registry builds the emission factor registry: the built-in table with
// any configured per-category overrides applied on top. Overrides for
// unknown category labels register new categories rather than failing.
func (c *Config) Registry() *engine.Registry {
	base := engine.DefaultRegistry()
	if len(c.Factors) == 0 {
		return base
	}

	merged := make(map[engine.Category]engine.Factor)
	for _, cat := range base.Categories() {
		merged[cat] = base.Lookup(cat)
	}
	for label, f := range c.Factors {
		merged[engine.Category(label)] = f
	}
	return engine.NewRegistry(merged)
}

// NarrativeEnabled reports whether the external narrative primary path is
// configured: credential presence is the switch.
func (c *Config) NarrativeEnabled() bool {
	return c.Narrative.APIKey != ""
}

// ToLoggingConfig converts the file shape into logging.Config.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{Level: l.Level, Format: l.Format, File: l.File}
}
