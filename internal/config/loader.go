// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames are the configuration files looked up at the repository root, in
// order of preference.
var FileNames = []string{".sven.yaml", ".sven.yml", ".sven.toml", ".sven.json"}

// Load reads the configuration at path, applies environment overrides and
// validates the result. An empty path means defaults only.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation. Callers that layer more overrides on top,
// such as command-line flags, validate once they are done.
func Read(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// Discover returns the first configuration file found in dir, or "" when
// there is none.
func Discover(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return path, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", nil
}

// decodeFile parses path into cfg based on its extension.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("decode TOML %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode JSON %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode YAML %s: %w", path, err)
		}
	default:
		if err := autoDetect(data, cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return nil
}

// autoDetect tries each supported format in turn. A failed attempt may have
// written partial values, so every attempt starts from defaults.
func autoDetect(data []byte, cfg *Config) error {
	try := []func(*Config) error{
		func(c *Config) error { return json.Unmarshal(data, c) },
		func(c *Config) error { _, err := toml.Decode(string(data), c); return err },
		func(c *Config) error { return yaml.Unmarshal(data, c) },
	}
	for _, decode := range try {
		candidate := Default()
		if err := decode(candidate); err == nil {
			*cfg = *candidate
			return nil
		}
	}
	return errors.New("unable to detect config format (tried JSON, TOML, YAML)")
}
