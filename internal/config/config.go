// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all insurabook configuration.
type Config struct {
	Data    Data    `yaml:"data"`
	Logging Logging `yaml:"logging"`
	UI      UI      `yaml:"ui"`
}

// Data holds persistence settings.
type Data struct {
	File        string `yaml:"file"`         // JSON contact list
	SeedSamples bool   `yaml:"seed_samples"` // Seed sample contacts when File is missing
}

// Logging holds log output settings.
type Logging struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file"`  // "" disables logging
}

// UI holds interactive shell settings.
type UI struct {
	Plain bool `yaml:"plain"` // Force the line shell even on a terminal
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Data: Data{
			File:        "data/insurabook.json",
			SeedSamples: true,
		},
		Logging: Logging{
			Level: "info",
			File:  ".insurabook/insurabook.log",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return errors.New("config: data.file cannot be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: logging.level must be one of debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: INSURABOOK_DATA_FILE, INSURABOOK_LOG_LEVEL,
// INSURABOOK_LOG_FILE, INSURABOOK_SEED.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("INSURABOOK_DATA_FILE"); v != "" {
		c.Data.File = v
	}
	if v := os.Getenv("INSURABOOK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv("INSURABOOK_LOG_FILE"); ok {
		c.Logging.File = v
	}
	if v := os.Getenv("INSURABOOK_SEED"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid INSURABOOK_SEED %q: %w", v, err)
		}
		c.Data.SeedSamples = seed
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Data    *rawData    `yaml:"data"`
	Logging *rawLogging `yaml:"logging"`
	UI      *rawUI      `yaml:"ui"`
}

type rawData struct {
	File        *string `yaml:"file"`
	SeedSamples *bool   `yaml:"seed_samples"`
}

type rawLogging struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

type rawUI struct {
	Plain *bool `yaml:"plain"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Data != nil {
		if layer.Data.File != nil {
			c.Data.File = *layer.Data.File
		}
		if layer.Data.SeedSamples != nil {
			c.Data.SeedSamples = *layer.Data.SeedSamples
		}
	}
	if layer.Logging != nil {
		if layer.Logging.Level != nil {
			c.Logging.Level = *layer.Logging.Level
		}
		if layer.Logging.File != nil {
			c.Logging.File = *layer.Logging.File
		}
	}
	if layer.UI != nil {
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
	}
}
