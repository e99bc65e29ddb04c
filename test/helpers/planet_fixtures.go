package helpers

import (
	"testing"
	"time"

	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// FixedTime is the reference instant used by mock clocks in tests
var FixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// NewTestPlanetState builds a planet of planetType, failing the test on error
func NewTestPlanetState(t testing.TB, id int, planetType planet.PlanetType) *planet.PlanetState {
	t.Helper()
	state, err := planet.NewPlanetState(shared.MustNewPlanetID(id), planetType)
	if err != nil {
		t.Fatalf("failed to create planet state: %v", err)
	}
	return state
}

// ChargeCells charges the cells at the given indexes
func ChargeCells(t testing.TB, state *planet.PlanetState, indexes ...int) {
	t.Helper()
	for _, i := range indexes {
		cell, err := state.Cell(i)
		if err != nil {
			t.Fatalf("cell %d: %v", i, err)
		}
		cell.Charge(energy.NewSunray())
	}
}
