package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// configVersion is the config schema this build understands.
const configVersion = 1

// Config is the puzzled service configuration, read once at startup.
type Config struct {
	Version  int    `yaml:"version"`
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// DatabaseURL enables the solve archive when non-empty.
	DatabaseURL string `yaml:"database_url"`

	// AllowedOrigins restricts CORS; empty allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxDepthCap bounds client-requested depth limits; 0 = no cap.
	MaxDepthCap int `yaml:"max_depth_cap"`

	// ProgressEvery is the number of expansions between live progress
	// events; 0 picks the default.
	ProgressEvery int `yaml:"progress_every"`
}

// LoadConfig reads and validates the YAML config at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Version != configVersion {
		return nil, fmt.Errorf("unsupported config version: %d (want %d)", cfg.Version, configVersion)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = 1000
	}
	return &cfg, nil
}

// ArchiveEnabled reports whether a Postgres archive is configured.
func (c *Config) ArchiveEnabled() bool { return c.DatabaseURL != "" }

// ClampDepth folds a client-requested depth limit into the configured cap.
func (c *Config) ClampDepth(requested int) int {
	if requested < 0 {
		requested = 0
	}
	if c.MaxDepthCap > 0 && (requested == 0 || requested > c.MaxDepthCap) {
		return c.MaxDepthCap
	}
	return requested
}
