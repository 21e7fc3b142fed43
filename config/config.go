// Package config loads benchmark settings from a YAML file, falling back
// to built-in defaults and applying environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/weiihann/kadanebench/workload"
)

// DefaultOutput is the CSV log written when no output is configured.
const DefaultOutput = "data/benchmark_results.csv"

// Environment variables that override file values.
const (
	EnvOutput   = "KADANEBENCH_OUTPUT"
	EnvSeed     = "KADANEBENCH_SEED"
	EnvLogLevel = "KADANEBENCH_LOG_LEVEL"
)

// Config holds sweep settings.
type Config struct {
	// Sizes requested when none are given on the command line.
	Sizes    []int  `yaml:"sizes"`
	Output   string `yaml:"output"`
	Seed     int64  `yaml:"seed"`
	MinValue int    `yaml:"min_value"`
	MaxValue int    `yaml:"max_value"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Output:   DefaultOutput,
		Seed:     workload.DefaultSeed,
		MinValue: workload.DefaultMinValue,
		MaxValue: workload.DefaultMaxValue,
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults. A missing file or an
// empty path yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}

		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}

		c.Seed = seed
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}

// Workload returns the generator settings.
func (c *Config) Workload() workload.Config {
	return workload.Config{
		Seed: c.Seed,
		Min:  c.MinValue,
		Max:  c.MaxValue,
	}
}

// Level maps LogLevel to a slog level. Unknown values map to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
