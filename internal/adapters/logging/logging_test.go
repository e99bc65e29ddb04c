package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/adapters/logging"
	"github.com/andrescamacho/trip-go/internal/adapters/persistence"
	"github.com/andrescamacho/trip-go/internal/application/common"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/test/helpers"
)

func TestSlogPlanetLogger_JSON(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger, err := logging.NewSlogPlanetLoggerFor(&buf, "json", "DEBUG")
	require.NoError(t, err)

	// Act
	logger.Log(common.LevelWarning, "rocket_build_failed", map[string]interface{}{"planet_id": 3, "cell_index": 1})

	// Assert
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "rocket_build_failed", record["msg"])
	assert.Equal(t, float64(3), record["planet_id"])
	assert.Equal(t, float64(1), record["cell_index"])
}

func TestSlogPlanetLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewSlogPlanetLoggerFor(&buf, "text", "INFO")
	require.NoError(t, err)

	logger.Log(common.LevelDebug, "cell_charged", nil)
	assert.Empty(t, buf.String())

	logger.Log(common.LevelInfo, "rocket_built", nil)
	assert.Contains(t, buf.String(), "rocket_built")
}

func TestNewSlogPlanetLoggerFor_Invalid(t *testing.T) {
	_, err := logging.NewSlogPlanetLoggerFor(&bytes.Buffer{}, "xml", "INFO")
	assert.Error(t, err)

	_, err = logging.NewSlogPlanetLoggerFor(&bytes.Buffer{}, "text", "LOUD")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"WARNING": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"ERROR":   slog.LevelError,
	}
	for input, expected := range tests {
		level, err := logging.ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}
}

func TestRepositoryPlanetLogger_PersistsAboveMinLevel(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanetLogRepository(db, shared.NewMockClock(helpers.FixedTime), 0)
	logger, err := logging.NewRepositoryPlanetLogger(repo, 8, "INFO", nil)
	require.NoError(t, err)

	// Act
	logger.Log(common.LevelDebug, "cell_charged", nil)
	logger.Log(common.LevelInfo, "rocket_built", map[string]interface{}{"cell_index": 0})

	// Assert
	entries, err := repo.GetLogs(context.Background(), 8, 10, nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rocket_built", entries[0].Message)
	assert.Equal(t, common.LevelInfo, entries[0].Level)
}

func TestMultiLogger_FansOut(t *testing.T) {
	first := helpers.NewMockPlanetLogger()
	second := helpers.NewMockPlanetLogger()
	multi := logging.NewMultiLogger(first, nil, second)

	multi.Log(common.LevelInfo, "ai_started", nil)

	assert.True(t, first.HasEntry(common.LevelInfo, "ai_started"))
	assert.True(t, second.HasEntry(common.LevelInfo, "ai_started"))
}
