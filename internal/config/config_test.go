package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
bot:
  token: "token-123"
  status: "testing"
logger:
  level: "DEBUG"
database:
  driver: "sqlite"
  path: "test.db"
lifecycle:
  delete_grace: 5s
  sweep_interval: 30s
metrics:
  enabled: true
  listen_addr: ":9999"
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "token-123", cfg.Bot.Token)
		assert.Equal(t, "testing", cfg.Bot.Status)
		assert.Equal(t, "DEBUG", cfg.Logger.Level)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "test.db", cfg.Database.Path)
		assert.Equal(t, 5*time.Second, cfg.Lifecycle.DeleteGrace)
		assert.Equal(t, 30*time.Second, cfg.Lifecycle.SweepInterval)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, ":9999", cfg.Metrics.ListenAddr)
	})

	t.Run("defaults fill unspecified fields", func(t *testing.T) {
		path := writeConfig(t, `
bot:
  token: "token-123"
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Equal(t, "utf8mb4", cfg.Database.Charset)
		assert.Equal(t, 10*time.Second, cfg.Lifecycle.DeleteGrace)
		assert.Equal(t, time.Minute, cfg.Lifecycle.SweepInterval)
		assert.Equal(t, "INFO", cfg.Logger.Level)
		assert.False(t, cfg.Metrics.Enabled)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		path := writeConfig(t, `
bot:
  status: "no token"
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file is rejected", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := Load("")
		assert.Error(t, err)
	})
}
