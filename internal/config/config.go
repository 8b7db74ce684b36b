// Package config loads the interpreter driver's YAML configuration,
// grounded on the corpus's config-file pattern: a versioned top-level
// document with a defaults-then-merge loading strategy, here scaled down
// to the handful of knobs a tree-walking evaluator driver needs (trace
// level, whether the redundancy checker runs, and debugger attachment).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the interpreter driver's top-level configuration document.
type Config struct {
	Version  int            `yaml:"version"`
	Settings SettingsConfig `yaml:"settings"`
}

// SettingsConfig holds the evaluator-facing knobs.
type SettingsConfig struct {
	// TraceLevel is an hclog level name: "trace", "debug", "info", "warn",
	// "error".
	TraceLevel string `yaml:"trace_level"`

	// CheckRedundancy enables the per-call redundancy pass over
	// multi-clause function bodies.
	CheckRedundancy bool `yaml:"check_redundancy"`

	// Debugger selects the attached debugger implementation: "none" or
	// "console".
	Debugger string `yaml:"debugger"`
}

// Default returns the configuration used when no file is found and no
// flag overrides are supplied.
func Default() *Config {
	return &Config{
		Version: 1,
		Settings: SettingsConfig{
			TraceLevel:      "warn",
			CheckRedundancy: true,
			Debugger:        "none",
		},
	}
}

// Load reads and parses a YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path if it is non-empty and exists, otherwise
// returns Default().
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// ApplyOverrides merges CLI flag values onto cfg, skipping zero values so
// an unset flag never clobbers a value loaded from file.
func (c *Config) ApplyOverrides(traceLevel string, checkRedundancySet bool, checkRedundancy bool, debuggerName string) {
	if traceLevel != "" {
		c.Settings.TraceLevel = traceLevel
	}
	if checkRedundancySet {
		c.Settings.CheckRedundancy = checkRedundancy
	}
	if debuggerName != "" {
		c.Settings.Debugger = debuggerName
	}
}
