package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:5001", cfg.Server.Addr())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxRequestSize)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, "./feedback.db", cfg.Database.Path)
	assert.Equal(t, "http://127.0.0.1:8000/", cfg.Grouping.URL)
	assert.Equal(t, 30*time.Second, cfg.Grouping.Timeout())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
server:
  port: 8080
  allowed_origins:
    - "https://feedback.internal"
grouping:
  url: "http://grouper:9000/group"
  timeout_seconds: 5
logging:
  level: "debug"
  format: "text"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"https://feedback.internal"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://grouper:9000/group", cfg.Grouping.URL)
	assert.Equal(t, 5*time.Second, cfg.Grouping.Timeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	// Untouched values keep their defaults
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "./feedback.db", cfg.Database.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server: [unterminated"), 0644))

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
server:
  port: 70000
grouping:
  url: "not a url"
  timeout_seconds: 0
logging:
  level: "chatty"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0644))

	_, err := Load(cfgPath)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "server.port")
	assert.Contains(t, msg, "grouping.url")
	assert.Contains(t, msg, "grouping.timeout_seconds")
	assert.Contains(t, msg, "logging.level")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
