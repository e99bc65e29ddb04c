package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	// Arrange
	path := writeConfig(t, `
planet:
  id: 3
  type: A
  ai: trip
database:
  enabled: true
  type: sqlite
  path: ":memory:"
simulation:
  events_per_second: 5
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Planet.ID)
	assert.Equal(t, "trip", cfg.Planet.AI)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 5.0, cfg.Simulation.EventsPerSecond)
	assert.Equal(t, 10, cfg.Simulation.Burst)
	assert.Equal(t, 2*time.Second, cfg.Simulation.ResponseTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "planet:\n  id: 1\n")
	t.Setenv("TRIP_PLANET_ID", "9")
	t.Setenv("TRIP_LOGGING_LEVEL", "debug")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Planet.ID)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"planet type":  "planet:\n  type: Z\n",
		"log level":    "logging:\n  level: loud\n",
		"metrics port": "metrics:\n  port: 80\n",
		"file output":  "logging:\n  output: file\n",
		"persist":      "logging:\n  persist: true\n",
		"negative id":  "planet:\n  id: -1\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	_, err := config.LoadConfig(writeConfig(t, "planet: [unclosed"))

	assert.Error(t, err)
}

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}

	config.SetDefaults(cfg)

	assert.Equal(t, "A", cfg.Planet.Type)
	assert.Equal(t, "trip", cfg.Planet.AI)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.NoError(t, config.ValidateConfig(cfg))
}
