// Package config provides configuration loading and structs for kwmap.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seoforge/kwmap/internal/scoring"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool                   `yaml:"debug"`
	Inputs   InputConfig            `yaml:"inputs"`
	Output   OutputConfig           `yaml:"output"`
	Scoring  *scoring.ScoringConfig `yaml:"scoring"`
	Matching MatchingConfig         `yaml:"matching"`
	Server   ServerConfig           `yaml:"server"`
	Storage  StorageConfig          `yaml:"storage"`
	Watch    WatchConfig            `yaml:"watch"`
}

// InputConfig holds source paths for keywords and page records.
type InputConfig struct {
	KeywordsPath string `yaml:"keywords_path"`
	PagesPath    string `yaml:"pages_path"`
}

// OutputConfig holds the result destination and summary settings.
type OutputConfig struct {
	Path string `yaml:"path"`
	TopN int    `yaml:"top_n"`
}

// MatchingConfig holds matcher execution settings.
type MatchingConfig struct {
	Workers int `yaml:"workers"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds the run-history database path. Empty disables history.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Load reads and parses the config file at path, expands paths, and applies
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Inputs.KeywordsPath = expandPath(cfg.Inputs.KeywordsPath, configDir)
	cfg.Inputs.PagesPath = expandPath(cfg.Inputs.PagesPath, configDir)
	cfg.Output.Path = expandPath(cfg.Output.Path, configDir)
	if cfg.Storage.DatabasePath != "" {
		cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	}

	return &cfg, nil
}

// Default returns a config with all defaults applied and no file input.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are left relative to the
// working directory so CLI-style defaults keep working.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	return path
}
