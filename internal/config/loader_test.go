package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(home, ".pmboard", "pmboard.db"), cfg.Storage.Path)
	assert.Equal(t, "pmDashboard_v1", cfg.Storage.Key)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.TimeoutSeconds)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
}

func TestLoadFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
storage:
  driver: redis
  key: team_board
redis:
  addr: cache:6380
  db: 3
log:
  level: debug
  file: ~/logs/pmboard.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "team_board", cfg.Storage.Key)
	assert.Equal(t, filepath.Join(home, ".pmboard", "pmboard.db"), cfg.Storage.Path, "unset keys keep defaults")
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, "logs", "pmboard.log"), cfg.Log.File)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PMBOARD_STORAGE_DRIVER", "memory")
	t.Setenv("PMBOARD_LOG_LEVEL", "error")
	t.Setenv("PMBOARD_REDIS_DB", "7")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: redis\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver, "env beats file")
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Redis.DB)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	err = WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)

	assert.NoError(t, WriteDefault(path, true))
}
