package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestSetupLogger_FanoutToFile(t *testing.T) {
	var stdout bytes.Buffer
	path := filepath.Join(t.TempDir(), "podcaster.log")

	logger, cleanup := setupLogger(&stdout, "info", path)
	logger.Info("feed published", "podcast_id", "p1")
	logger.Debug("hidden")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), `"podcast_id":"p1"`)
	assert.Contains(t, string(data), `"msg":"feed published"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	var stdout bytes.Buffer

	logger, cleanup := setupLogger(&stdout, "debug", "")
	logger.Debug("visible")
	require.NoError(t, cleanup())

	assert.Contains(t, stdout.String(), "visible")
}
