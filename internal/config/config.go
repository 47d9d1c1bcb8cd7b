// Package config handles the viewer's per-user settings and the list of
// recently opened files, both kept under ~/.avro-viewer/.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when config.yaml is absent or leaves a field unset.
const (
	DefaultPageSize    = 50
	DefaultMaxResults  = 500
	DefaultRecentLimit = 10
)

// Config is the in-memory representation of ~/.avro-viewer/config.yaml.
type Config struct {
	DefaultPageSize   int `yaml:"default_page_size,omitempty"`
	DefaultMaxResults int `yaml:"default_max_results,omitempty"`
	RecentLimit       int `yaml:"recent_limit,omitempty"`
}

// Dir returns the absolute path to ~/.avro-viewer/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".avro-viewer"), nil
}

// Path returns the absolute path to ~/.avro-viewer/config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DefaultPageSize:   DefaultPageSize,
		DefaultMaxResults: DefaultMaxResults,
		RecentLimit:       DefaultRecentLimit,
	}
}

// Load reads and parses ~/.avro-viewer/config.yaml. A missing file is not an
// error: the defaults apply. Unset or out-of-range fields fall back to the
// defaults as well.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = DefaultPageSize
	}
	if cfg.DefaultMaxResults < 1 {
		cfg.DefaultMaxResults = DefaultMaxResults
	}
	if cfg.RecentLimit < 1 {
		cfg.RecentLimit = DefaultRecentLimit
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.avro-viewer/config.yaml, creating the
// directory if needed.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
