package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/trip-go/internal/adapters/persistence"
	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/test/helpers"
)

type persistenceContext struct {
	clock     *shared.MockClock
	snapshots *persistence.GormPlanetSnapshotRepository
	logs      *persistence.GormPlanetLogRepository
}

func (c *persistenceContext) reset() error {
	// Use shared test database and truncate all tables for test isolation
	if err := helpers.TruncateAllTables(); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	c.clock = shared.NewMockClock(helpers.FixedTime)
	c.snapshots = persistence.NewGormPlanetSnapshotRepository(helpers.SharedTestDB, c.clock)
	c.logs = nil
	return nil
}

// InitializePersistenceScenario registers the snapshot and log repository steps
func InitializePersistenceScenario(sc *godog.ScenarioContext) {
	c := &persistenceContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, c.reset()
	})

	// Given steps
	sc.Step(`^the following snapshots are saved a minute apart:$`, c.theFollowingSnapshotsAreSaved)
	sc.Step(`^a log repository with a (\d+) second dedup window$`, c.aLogRepositoryWithDedupWindow)

	// When steps
	sc.Step(`^planet (\d+) logs "([^"]*)" at "([^"]*)" (\d+) times?$`, c.planetLogs)
	sc.Step(`^(\d+) seconds pass$`, c.secondsPass)

	// Then steps
	sc.Step(`^the latest snapshot of planet (\d+) should read "([^"]*)"$`, c.theLatestSnapshotShouldRead)
	sc.Step(`^planet (\d+) should have no snapshot$`, c.planetShouldHaveNoSnapshot)
	sc.Step(`^listing (\d+) snapshots of planet (\d+) should return "([^"]*)"$`, c.listingSnapshotsShouldReturn)
	sc.Step(`^planet (\d+) should have (\d+) stored log entr(?:y|ies)$`, c.planetShouldHaveStoredLogEntries)
	sc.Step(`^planet (\d+) should have (\d+) stored "([^"]*)" entr(?:y|ies)$`, c.planetShouldHaveStoredLevelEntries)
}

// ============================================================================
// Given Steps
// ============================================================================

func (c *persistenceContext) theFollowingSnapshotsAreSaved(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		var planetID uint32
		if _, err := fmt.Sscanf(getCellValueFromTable(table, row, "planet"), "%d", &planetID); err != nil {
			return fmt.Errorf("invalid planet id: %w", err)
		}
		cells := parseCells(getCellValueFromTable(table, row, "cells"))
		rocket := getCellValueFromTable(table, row, "rocket")

		charged := 0
		for _, on := range cells {
			if on {
				charged++
			}
		}

		snap := planet.Snapshot{
			PlanetID:          planetID,
			PlanetType:        planet.PlanetType(getCellValueFromTable(table, row, "type")),
			EnergyCells:       cells,
			ChargedCellsCount: charged,
			HasRocket:         rocket != "-",
		}
		if snap.HasRocket {
			snap.RocketID = rocket
		}

		if err := c.snapshots.Save(context.Background(), snap); err != nil {
			return err
		}
		c.clock.Advance(time.Minute)
	}
	return nil
}

func (c *persistenceContext) aLogRepositoryWithDedupWindow(seconds int) error {
	c.logs = persistence.NewGormPlanetLogRepository(helpers.SharedTestDB, c.clock, time.Duration(seconds)*time.Second)
	return nil
}

// ============================================================================
// When Steps
// ============================================================================

func (c *persistenceContext) planetLogs(planetID int, message, level string, times int) error {
	for i := 0; i < times; i++ {
		if err := c.logs.Log(context.Background(), uint32(planetID), message, level, map[string]interface{}{"attempt": i}); err != nil {
			return err
		}
	}
	return nil
}

func (c *persistenceContext) secondsPass(seconds int) error {
	c.clock.Advance(time.Duration(seconds) * time.Second)
	return nil
}

// ============================================================================
// Then Steps
// ============================================================================

func (c *persistenceContext) theLatestSnapshotShouldRead(planetID int, expected string) error {
	record, err := c.snapshots.FindLatest(context.Background(), uint32(planetID))
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("no snapshot for planet %d", planetID)
	}
	if actual := cellsString(record.EnergyCells); actual != expected {
		return fmt.Errorf("expected %s, got %s", expected, actual)
	}
	return nil
}

func (c *persistenceContext) planetShouldHaveNoSnapshot(planetID int) error {
	record, err := c.snapshots.FindLatest(context.Background(), uint32(planetID))
	if err != nil {
		return err
	}
	if record != nil {
		return fmt.Errorf("expected no snapshot, got %s", cellsString(record.EnergyCells))
	}
	return nil
}

func (c *persistenceContext) listingSnapshotsShouldReturn(limit, planetID int, expected string) error {
	records, err := c.snapshots.List(context.Background(), uint32(planetID), limit)
	if err != nil {
		return err
	}
	actual := make([]string, len(records))
	for i, r := range records {
		actual[i] = cellsString(r.EnergyCells)
	}
	if strings.Join(actual, ",") != expected {
		return fmt.Errorf("expected %s, got %s", expected, strings.Join(actual, ","))
	}
	return nil
}

func (c *persistenceContext) planetShouldHaveStoredLogEntries(planetID, expected int) error {
	entries, err := c.logs.GetLogs(context.Background(), uint32(planetID), 0, nil, nil)
	if err != nil {
		return err
	}
	if len(entries) != expected {
		return fmt.Errorf("expected %d entries, got %d", expected, len(entries))
	}
	return nil
}

func (c *persistenceContext) planetShouldHaveStoredLevelEntries(planetID, expected int, level string) error {
	entries, err := c.logs.GetLogs(context.Background(), uint32(planetID), 0, &level, nil)
	if err != nil {
		return err
	}
	if len(entries) != expected {
		return fmt.Errorf("expected %d %s entries, got %d", expected, level, len(entries))
	}
	return nil
}
