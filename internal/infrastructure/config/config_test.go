package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "factoryplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Arrange
	path := writeConfig(t, "database:\n  path: \":memory:\"\n")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 2, cfg.Planner.MaxNodeVisits)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
planner:
  max_node_visits: 4
  default_belt: mk3
logging:
  level: debug
  format: json
metrics:
  enabled: true
  textfile_path: /tmp/factoryplan.prom
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Planner.MaxNodeVisits)
	assert.Equal(t, "mk3", cfg.Planner.DefaultBelt)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/factoryplan.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "planner:\n  max_node_visits: 4\n")
	t.Setenv("FP_PLANNER_MAX_NODE_VISITS", "6")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Planner.MaxNodeVisits)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"visits above bound", "planner:\n  max_node_visits: 17\n"},
		{"unknown belt", "planner:\n  default_belt: mk9\n"},
		{"unknown level", "logging:\n  level: loud\n"},
		{"file output without path", "logging:\n  output: file\n"},
		{"unknown database", "database:\n  type: mysql\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.body))

			assert.Error(t, err)
		})
	}
}

func TestUserConfigHandler_DefaultPlan(t *testing.T) {
	// Arrange
	handler, err := config.NewUserConfigHandlerAt(t.TempDir())
	require.NoError(t, err)

	// Act
	require.NoError(t, handler.SetDefaultPlan("iron-line"))
	loaded, err := handler.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "iron-line", loaded.DefaultPlan)

	require.NoError(t, handler.ClearDefaultPlan())
	loaded, err = handler.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.DefaultPlan)
}
