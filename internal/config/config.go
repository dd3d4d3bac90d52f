// Package config loads batch scan configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/taigrr/filescan/internal/types"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Env.
const (
	EnvConfigPath = "FILESCAN_CONFIG"
	EnvLogLevel   = "FILESCAN_LOG_LEVEL"
)

// Config is the batch configuration.
type Config struct {
	Targets    []types.Target         `yaml:"targets"`
	Extensions []string               `yaml:"extensions"`
	Filter     types.PathFilterConfig `yaml:",inline"`
}

// Default returns the built-in batch: three home folders at different depths
// crossed with common document extensions.
func Default() *Config {
	return &Config{
		Targets: []types.Target{
			{Directory: "~/Documents", Depth: 0},
			{Directory: "~/Downloads", Depth: 2},
			{Directory: "~/Desktop", Depth: -1},
		},
		Extensions: []string{".docx", ".txt", ".pdf"},
	}
}

// Load reads a YAML configuration file. Sections missing from the file fall
// back to Default. Target directories have a leading "~" expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %s - %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %s - %w", path, err)
	}

	def := Default()
	if len(cfg.Targets) == 0 {
		cfg.Targets = def.Targets
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = def.Extensions
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %s - %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the configuration for values that can never scan.
func (c *Config) Validate() error {
	var errs []error
	for i, t := range c.Targets {
		if strings.TrimSpace(t.Directory) == "" {
			errs = append(errs, fmt.Errorf("targets[%d]: directory is required", i))
		}
	}
	for i, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			errs = append(errs, fmt.Errorf("extensions[%d]: empty extension", i))
		}
	}
	return errors.Join(errs...)
}

// ExpandedTargets returns the targets with "~" resolved to the home directory.
func (c *Config) ExpandedTargets() ([]types.Target, error) {
	out := make([]types.Target, 0, len(c.Targets))
	for _, t := range c.Targets {
		dir, err := ExpandHome(t.Directory)
		if err != nil {
			return nil, err
		}
		out = append(out, types.Target{Directory: dir, Depth: t.Depth})
	}
	return out, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Environment holds settings taken from the process environment.
type Environment struct {
	ConfigPath string
	LogLevel   slog.Level
}

// Env loads an optional .env file and reads the FILESCAN_* variables.
func Env() Environment {
	_ = godotenv.Load()

	return Environment{
		ConfigPath: strings.TrimSpace(os.Getenv(EnvConfigPath)),
		LogLevel:   ParseLevel(os.Getenv(EnvLogLevel)),
	}
}

// ParseLevel converts a level name to a slog.Level, defaulting to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
