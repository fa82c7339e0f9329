// Package config loads CLI settings: defaults, then an optional YAML file,
// then a .env file and SCHEMATIC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a setting has an unsupported value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file settings.
const (
	EnvLogLevel     = "SCHEMATIC_LOG_LEVEL"
	EnvLogFormat    = "SCHEMATIC_LOG_FORMAT"
	EnvOutputFormat = "SCHEMATIC_OUTPUT_FORMAT"
	EnvColor        = "SCHEMATIC_COLOR"
	EnvCacheSize    = "SCHEMATIC_CACHE_SIZE"
)

// Config holds all schematic CLI settings.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Cache  CacheConfig  `yaml:"cache"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // human, json
	Color  string `yaml:"color"`  // auto, always, never
}

// CacheConfig configures the report cache.
type CacheConfig struct {
	Size int `yaml:"size"` // max cached reports, > 0
}

// Default returns the built-in settings:
// log warn/console, output human/auto, cache size 128.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn", Format: "console"},
		Output: OutputConfig{Format: "human", Color: "auto"},
		Cache:  CacheConfig{Size: 128},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the given .env files (".env" when none are given; a
// missing file is ignored) and the process environment, in that order of
// increasing precedence. Variables already present in the environment win
// over .env entries.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
	}

	_ = godotenv.Load(envFiles...)

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from SCHEMATIC_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = strings.ToLower(strings.TrimSpace(v))
		}
	}
	set(EnvLogLevel, &c.Log.Level)
	set(EnvLogFormat, &c.Log.Format)
	set(EnvOutputFormat, &c.Output.Format)
	set(EnvColor, &c.Output.Color)

	if v, ok := lookup(EnvCacheSize); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvCacheSize, v, err)
		}
		c.Cache.Size = n
	}
	return nil
}

// Validate checks every setting against its allowed values.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		allow []string
	}{
		{"log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}},
		{"log.format", c.Log.Format, []string{"json", "console"}},
		{"output.format", c.Output.Format, []string{"human", "json"}},
		{"output.color", c.Output.Color, []string{"auto", "always", "never"}},
	}
	for _, ch := range checks {
		if !contains(ch.allow, ch.value) {
			return fmt.Errorf("%w: %s=%q (want one of %s)", ErrInvalidConfig, ch.name, ch.value, strings.Join(ch.allow, ", "))
		}
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("%w: cache.size=%d (must be > 0)", ErrInvalidConfig, c.Cache.Size)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
