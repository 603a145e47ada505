package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration. A missing file means
// defaults; a present but unreadable or invalid file is an error.
type Config struct {
	// Symlinks is the builder's symlink policy: "reject" or "skip".
	Symlinks string `yaml:"symlinks"`
	// Workers bounds the duplicate grouper's parallelism. Zero means one
	// worker per CPU.
	Workers int `yaml:"workers"`
	// Indent is the number of spaces per depth level in tree output.
	Indent int `yaml:"indent"`
}

func DefaultConfig() *Config {
	return &Config{
		Symlinks: "reject",
		Workers:  0,
		Indent:   2,
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if cfg.Symlinks != "reject" && cfg.Symlinks != "skip" {
		return nil, fmt.Errorf("invalid symlinks policy %q: must be \"reject\" or \"skip\"", cfg.Symlinks)
	}
	if cfg.Indent < 0 {
		return nil, fmt.Errorf("indent cannot be negative")
	}

	return cfg, nil
}
