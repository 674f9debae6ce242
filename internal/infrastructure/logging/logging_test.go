package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/config"
	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/logging"
)

func TestNewWithWriter_JSONRespectsLevel(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logging.NewWithWriter(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	// Act
	logger.Info("hidden")
	logger.Warn("merge conflict", "node", "merger-1")

	// Assert
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "merge conflict", entry["msg"])
	assert.Equal(t, "merger-1", entry["node"])
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "factoryplan.log")

	logger, closer, err := logging.New(config.LoggingConfig{
		Level: "debug", Format: "text", Output: "file", FilePath: path,
	})
	require.NoError(t, err)
	logger.Debug("propagation finished", "paths", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "paths=3")
}

func TestNew_FileOutputNeedsPath(t *testing.T) {
	_, _, err := logging.New(config.LoggingConfig{Output: "file"})

	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}
