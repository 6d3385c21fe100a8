// Package config loads and validates jsontree.yml, the viewer configuration.
// Lookup order: an explicit --config path, ./jsontree.yml, then
// ~/.config/jsontree/jsontree.yml. A missing file is not an error; defaults
// apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/jsontree/errors"
	"github.com/grovetools/jsontree/logging"
)

// Config is the root of jsontree.yml.
type Config struct {
	// Theme selects the color palette: "kanagawa", "gruvbox", or "terminal".
	Theme string `yaml:"theme" json:"theme,omitempty" jsonschema:"enum=kanagawa,enum=gruvbox,enum=terminal"`

	// Icons selects the icon set: "nerd" (default) or "ascii".
	Icons string `yaml:"icons" json:"icons,omitempty" jsonschema:"enum=nerd,enum=ascii"`

	// StartCollapsed builds the tree with every container collapsed.
	StartCollapsed bool `yaml:"start_collapsed" json:"start_collapsed,omitempty"`

	// Watch configures live reload of the viewed document.
	Watch WatchConfig `yaml:"watch" json:"watch,omitempty"`

	// Logging configures the logging subsystem.
	Logging logging.Config `yaml:"logging" json:"logging,omitempty"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" json:"-" jsonschema:"-"`
}

// WatchConfig is the live-reload section.
type WatchConfig struct {
	// Enabled turns on file watching without the --watch flag.
	Enabled bool `yaml:"enabled" json:"enabled,omitempty"`

	// DebounceMs collapses rapid successive file events into one reload.
	DebounceMs int `yaml:"debounce_ms" json:"debounce_ms,omitempty" jsonschema:"minimum=0"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Theme: "kanagawa",
		Icons: "nerd",
		Watch: WatchConfig{DebounceMs: 200},
	}
}

// Load reads the configuration from an explicit path, or from the default
// lookup locations when path is empty. The loaded document is validated
// against the embedded JSON Schema before use.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}
	for _, candidate := range defaultPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return loadFile(candidate)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"jsontree.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "jsontree", "jsontree.yml"))
	}
	return paths
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("cannot read %s", path))
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses, defaults, and validates raw YAML configuration.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid YAML in configuration")
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Debounce returns the configured debounce as a millisecond count, falling
// back to the default when unset or negative.
func (w WatchConfig) Debounce() int {
	if w.DebounceMs <= 0 {
		return 200
	}
	return w.DebounceMs
}

// UnmarshalExtension decodes one extension section from the loaded
// jsontree.yml into a typed target struct. The target must be a pointer. A
// missing key leaves the target zero-valued and is not an error.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}
	return nil
}
