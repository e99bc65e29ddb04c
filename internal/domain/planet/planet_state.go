package planet

import (
	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// PlanetState is the mutable state of one planet: its ordered reserve of energy
// cells and at most one rocket.
//
// Invariants:
// - The number of cells is fixed at construction
// - Cell order is the tie-break order for every scan (lowest index first)
// - A rocket only comes into existence by consuming exactly one charged cell
// - At most one rocket exists at a time
type PlanetState struct {
	id         shared.PlanetID
	planetType PlanetType
	cells      []*energy.EnergyCell
	rocket     *Rocket
}

// NewPlanetState creates a planet of the given type with every cell empty
func NewPlanetState(id shared.PlanetID, planetType PlanetType) (*PlanetState, error) {
	rules := planetType.Rules()
	if rules.EnergyCells <= 0 {
		return nil, shared.NewValidationError("planet_type", "unknown planet type "+string(planetType))
	}

	cells := make([]*energy.EnergyCell, rules.EnergyCells)
	for i := range cells {
		cells[i] = energy.NewEnergyCell()
	}

	return &PlanetState{
		id:         id,
		planetType: planetType,
		cells:      cells,
	}, nil
}

// ID returns the planet identifier
func (s *PlanetState) ID() shared.PlanetID {
	return s.id
}

// Type returns the planet type
func (s *PlanetState) Type() PlanetType {
	return s.planetType
}

// CanHaveRocket reports whether the planet type supports rockets
func (s *PlanetState) CanHaveRocket() bool {
	return s.planetType.Rules().CanHaveRocket
}

// CellCount returns the size of the reserve
func (s *PlanetState) CellCount() int {
	return len(s.cells)
}

// Cell returns the cell at index
func (s *PlanetState) Cell(index int) (*energy.EnergyCell, error) {
	if index < 0 || index >= len(s.cells) {
		return nil, shared.NewCellIndexError(index, len(s.cells))
	}
	return s.cells[index], nil
}

// FirstUnchargedCell scans the reserve in index order for an empty cell
func (s *PlanetState) FirstUnchargedCell() (int, bool) {
	for i, cell := range s.cells {
		if !cell.IsCharged() {
			return i, true
		}
	}
	return -1, false
}

// FirstChargedCell scans the reserve in index order for a charged cell
func (s *PlanetState) FirstChargedCell() (int, bool) {
	for i, cell := range s.cells {
		if cell.IsCharged() {
			return i, true
		}
	}
	return -1, false
}

// ChargedCellsCount returns how many cells hold a charge
func (s *PlanetState) ChargedCellsCount() int {
	count := 0
	for _, cell := range s.cells {
		if cell.IsCharged() {
			count++
		}
	}
	return count
}

// HasRocket reports whether a rocket is ready
func (s *PlanetState) HasRocket() bool {
	return s.rocket != nil
}

// BuildRocket consumes the charge of the cell at index and stores a new rocket.
// On any error the state is left unchanged.
func (s *PlanetState) BuildRocket(index int) error {
	if !s.CanHaveRocket() {
		return shared.NewRocketNotSupportedError(s.id)
	}
	if s.rocket != nil {
		return shared.NewRocketAlreadyPresentError(s.id)
	}
	cell, err := s.Cell(index)
	if err != nil {
		return err
	}
	if !cell.IsCharged() {
		return shared.NewCellNotChargedError(index)
	}
	if err := cell.Discharge(); err != nil {
		return err
	}
	s.rocket = newRocket(s.id)
	return nil
}

// TakeRocket removes and returns the rocket, or nil if there is none
func (s *PlanetState) TakeRocket() *Rocket {
	rocket := s.rocket
	s.rocket = nil
	return rocket
}

// Snapshot returns a detached copy of the observable state
func (s *PlanetState) Snapshot() Snapshot {
	charged := make([]bool, len(s.cells))
	count := 0
	for i, cell := range s.cells {
		charged[i] = cell.IsCharged()
		if charged[i] {
			count++
		}
	}

	snap := Snapshot{
		PlanetID:          s.id.Value(),
		PlanetType:        s.planetType,
		EnergyCells:       charged,
		ChargedCellsCount: count,
		HasRocket:         s.rocket != nil,
	}
	if s.rocket != nil {
		snap.RocketID = s.rocket.ID()
	}
	return snap
}
