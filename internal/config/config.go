// Package config provides configuration types, defaults, and persistence
// for glint.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/salog0d/glint/internal/log"
	"github.com/salog0d/glint/internal/tracing"
)

// Config holds all configuration options for glint.
type Config struct {
	// Format is the default output format: "ansi", "html" or "json".
	Format string `mapstructure:"format"`

	// Language overrides extension-based detection when set.
	Language string `mapstructure:"language"`

	// Jobs is the worker budget for parallel lexing. Zero means one
	// worker per CPU.
	Jobs int `mapstructure:"jobs"`

	// LogFile receives structured debug logs when debugging is on.
	LogFile string `mapstructure:"log_file"`

	Cache   CacheConfig    `mapstructure:"cache"`
	Watch   WatchConfig    `mapstructure:"watch"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// CacheConfig controls the render cache used by watch mode.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// WatchConfig controls watch-mode behavior.
type WatchConfig struct {
	// Debounce is how long the watcher waits after the last write
	// before re-rendering.
	Debounce time.Duration `mapstructure:"debounce"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Format: "ansi",
		Jobs:   0,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# glint configuration
# Lookup order: .glint/config.yaml, then ~/.config/glint/config.yaml

# Default output format: ansi, html or json
format: ansi

# Worker budget for parallel lexing. 0 uses one worker per CPU.
jobs: 0

# Force a language instead of detecting from the file extension.
# Supported: python, racket, sql
# language: python

# Structured debug log destination (enabled with --debug or GLINT_DEBUG=1)
# log_file: glint-debug.log

cache:
  # Cache rendered output in watch mode, keyed by content hash
  enabled: true
  ttl: 10m

watch:
  # Settle time after the last write before re-rendering
  debounce: 500ms

tracing:
  enabled: false
  # Exporter: none, file, stdout, otlp
  exporter: file
  # file_path: traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0
  service_name: glint
`
}

// WriteDefaultConfig writes the default config template to configPath.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
