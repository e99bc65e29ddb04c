package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/adapters/persistence"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/test/helpers"
)

func TestPlanetLogRepository_LogAndGet(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(helpers.FixedTime)
	repo := persistence.NewGormPlanetLogRepository(db, clock, 0)
	ctx := context.Background()

	// Act
	require.NoError(t, repo.Log(ctx, 1, "ai_started", "INFO", nil))
	clock.Advance(time.Second)
	require.NoError(t, repo.Log(ctx, 1, "rocket_built", "INFO", map[string]interface{}{"cell_index": 0}))
	clock.Advance(time.Second)
	require.NoError(t, repo.Log(ctx, 1, "no_uncharged_cells", "WARNING", nil))
	require.NoError(t, repo.Log(ctx, 2, "ai_started", "INFO", nil))

	entries, err := repo.GetLogs(ctx, 1, 10, nil, nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "no_uncharged_cells", entries[0].Message)
	assert.Equal(t, "rocket_built", entries[1].Message)
	assert.Equal(t, float64(0), entries[1].Metadata["cell_index"])
	assert.Nil(t, entries[2].Metadata)
}

func TestPlanetLogRepository_Filters(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(helpers.FixedTime)
	repo := persistence.NewGormPlanetLogRepository(db, clock, 0)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Log(ctx, 3, "cell_charged", "DEBUG", nil))
		clock.Advance(time.Second)
	}
	require.NoError(t, repo.Log(ctx, 3, "rocket_build_failed", "WARNING", nil))

	// Act
	warning := "WARNING"
	warnings, err := repo.GetLogs(ctx, 3, 10, &warning, nil)
	require.NoError(t, err)

	since := helpers.FixedTime.Add(2 * time.Second)
	recent, err := repo.GetLogs(ctx, 3, 10, nil, &since)
	require.NoError(t, err)

	page, err := repo.GetLogsWithOffset(ctx, 3, 2, 1, nil, nil)
	require.NoError(t, err)

	// Assert
	require.Len(t, warnings, 1)
	assert.Equal(t, "rocket_build_failed", warnings[0].Message)
	assert.Len(t, recent, 3)
	require.Len(t, page, 2)
	assert.Equal(t, "cell_charged", page[0].Message)
}

func TestPlanetLogRepository_Deduplication(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(helpers.FixedTime)
	repo := persistence.NewGormPlanetLogRepository(db, clock, time.Minute)
	ctx := context.Background()

	// Act
	require.NoError(t, repo.Log(ctx, 1, "no_uncharged_cells", "WARNING", nil))
	clock.Advance(10 * time.Second)
	require.NoError(t, repo.Log(ctx, 1, "no_uncharged_cells", "WARNING", nil))
	require.NoError(t, repo.Log(ctx, 2, "no_uncharged_cells", "WARNING", nil))
	clock.Advance(time.Minute)
	require.NoError(t, repo.Log(ctx, 1, "no_uncharged_cells", "WARNING", nil))

	// Assert
	planetOne, err := repo.GetLogs(ctx, 1, 0, nil, nil)
	require.NoError(t, err)
	planetTwo, err := repo.GetLogs(ctx, 2, 0, nil, nil)
	require.NoError(t, err)
	assert.Len(t, planetOne, 2)
	assert.Len(t, planetTwo, 1)
}
