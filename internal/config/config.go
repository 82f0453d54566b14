package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the top-level application configuration.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Extract ExtractConfig `toml:"extract"`
}

// OutputConfig holds settings for formatting parsed wiki structures.
type OutputConfig struct {
	Format string `toml:"format"` // json, xml, yaml, markdown
}

// ExtractConfig holds settings for diagram extraction over multiple files.
type ExtractConfig struct {
	Concurrency int `toml:"concurrency"` // max files processed in parallel
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "json",
		},
		Extract: ExtractConfig{
			Concurrency: 4,
		},
	}
}

// Load reads the config file at path, applying defaults for anything the
// file does not set. A missing file is not an error: defaults are returned
// so the tool works without any configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if cfg.Extract.Concurrency <= 0 {
		cfg.Extract.Concurrency = DefaultConfig().Extract.Concurrency
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultConfig().Output.Format
	}

	return cfg, nil
}
