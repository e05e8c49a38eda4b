package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/balkashynov/pmboard/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pmboard.log")

	log, err := New(config.LogConfig{Level: "warn", File: path})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("snapshot reset", zap.String("key", "pmDashboard_v1"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"snapshot reset"`)
	assert.Contains(t, string(data), `"key":"pmDashboard_v1"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewStderr(t *testing.T) {
	log, err := New(config.LogConfig{Level: "error"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
	assert.False(t, log.Core().Enabled(zapcore.WarnLevel))
}
