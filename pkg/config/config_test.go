package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"js", "java"}, cfg.Runtimes)
	assert.Equal(t, "-", cfg.Output)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "protosym.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
runtimes:
  - js
output: report.json
cache:
  enabled: true
  max_entries: 128
  ttl: 30s
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"js"}, cfg.Runtimes)
	assert.Equal(t, "report.json", cfg.Output)
	assert.Equal(t, 128, cfg.Cache.MaxEntries)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())
}

func TestLoadFromDir_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Runtimes, cfg.Runtimes)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PROTOSYM_LOG_LEVEL", "error")
	t.Setenv("PROTOSYM_RUNTIMES", "java, js")
	t.Setenv("PROTOSYM_CACHE_ENABLED", "false")

	cfg, err := LoadFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, []string{"java", "js"}, cfg.Runtimes)
	assert.False(t, cfg.Cache.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "no runtimes",
			mutate:  func(c *Config) { c.Runtimes = nil },
			wantErr: "at least one runtime",
		},
		{
			name:    "empty runtime id",
			mutate:  func(c *Config) { c.Runtimes = []string{"js", ""} },
			wantErr: "non-empty",
		},
		{
			name:    "empty output",
			mutate:  func(c *Config) { c.Output = "" },
			wantErr: "output is required",
		},
		{
			name:    "bad cache ttl",
			mutate:  func(c *Config) { c.Cache.TTL = "sideways" },
			wantErr: "invalid cache TTL",
		},
		{
			name:    "bad cache size",
			mutate:  func(c *Config) { c.Cache.MaxEntries = 0 },
			wantErr: "cache max entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParsedLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"unknown", logrus.InfoLevel},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.ParsedLogLevel(), "level %s", tt.level)
	}
}
