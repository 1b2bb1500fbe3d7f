// Package config handles the fleetdeck configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat fleetdeck configuration.
type Config struct {
	Version string `json:"version"`
	DataDir string `json:"data_dir,omitempty"` // overrides ~/.fleetdeck when set
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Version: "1"}
}

// LoadConfig reads config.json from the given data directory. A missing
// file yields the defaults; a malformed file is an error.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the given data directory.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultDataDir returns the default data directory (~/.fleetdeck).
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".fleetdeck"), nil
}

// ResolveDataDir returns the effective data directory: the config's
// DataDir when set, the default otherwise.
func ResolveDataDir() (string, error) {
	base, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	cfg, err := LoadConfig(base)
	if err != nil {
		return "", err
	}
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	return base, nil
}
