package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds all CLI configuration
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Runtime conventions to emit, by registry ID
	Runtimes []string `yaml:"runtimes"`

	// Search paths for .proto imports
	IncludePaths []string `yaml:"include_paths"`

	// Report destination, "-" for stdout
	Output string `yaml:"output"`

	// Symbol cache tuning
	Cache CacheConfig `yaml:"cache"`
}

// CacheConfig holds symbol cache settings
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	MaxEntries int    `yaml:"max_entries"`
	TTL        string `yaml:"ttl"`
}

// DefaultConfig returns the default CLI configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		Runtimes:     []string{"js", "java"},
		IncludePaths: []string{"."},
		Output:       "-",
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 4096,
			TTL:        "5m",
		},
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFromDir searches dir for a config file, falling back to defaults
// plus environment overrides when none exists
func LoadFromDir(dir string) (*Config, error) {
	configNames := []string{"protosym.yaml", "protosym.yml", ".protosym.yaml", ".protosym.yml"}

	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	cfg := DefaultConfig()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays PROTOSYM_* environment variables
func (c *Config) applyEnv() {
	c.LogLevel = getEnv("PROTOSYM_LOG_LEVEL", c.LogLevel)
	c.Output = getEnv("PROTOSYM_OUTPUT", c.Output)

	if runtimes := getEnvList("PROTOSYM_RUNTIMES"); runtimes != nil {
		c.Runtimes = runtimes
	}
	if includes := getEnvList("PROTOSYM_INCLUDE_PATHS"); includes != nil {
		c.IncludePaths = includes
	}

	c.Cache.Enabled = getEnvBool("PROTOSYM_CACHE_ENABLED", c.Cache.Enabled)
	c.Cache.MaxEntries = getEnvInt("PROTOSYM_CACHE_MAX_ENTRIES", c.Cache.MaxEntries)
	c.Cache.TTL = getEnv("PROTOSYM_CACHE_TTL", c.Cache.TTL)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if len(c.Runtimes) == 0 {
		return fmt.Errorf("at least one runtime is required")
	}
	for _, id := range c.Runtimes {
		if id == "" {
			return fmt.Errorf("runtime IDs must be non-empty")
		}
	}

	if c.Output == "" {
		return fmt.Errorf("output is required (use \"-\" for stdout)")
	}

	if c.Cache.Enabled {
		if c.Cache.MaxEntries <= 0 {
			return fmt.Errorf("cache max entries must be positive")
		}
		if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
			return fmt.Errorf("invalid cache TTL %q: %w", c.Cache.TTL, err)
		}
	}

	return nil
}

// ParsedLogLevel returns the logrus level for the configured log level
func (c *Config) ParsedLogLevel() logrus.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// CacheTTL returns the parsed cache TTL. Call Validate first; an
// unparseable value falls back to the default.
func (c *Config) CacheTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 5 * time.Minute
	}
	return ttl
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList returns a comma-separated environment variable as a slice, or
// nil when unset
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
