package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "disc", "disc.log")

	logger, closeFn, err := New(Options{Level: slog.LevelInfo, Path: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Warn("save failed", "op", "append")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=WARN")
	assert.Contains(t, string(data), `msg="save failed"`)
	assert.Contains(t, string(data), "op=append")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closeFn, err := New(Options{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closeFn())
	logger.Error("nowhere")
}

func TestNewWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelDebug)
	logger.Debug("visible", "n", 1)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "n=1")
}
