package shared

import "fmt"

// PlanetID is a value object identifying a planet inside the galaxy.
// Zero is a valid identifier (the orchestrator numbers planets from 0).
type PlanetID struct {
	value uint32
}

// NewPlanetID creates a new PlanetID value object
func NewPlanetID(id int) (PlanetID, error) {
	if id < 0 {
		return PlanetID{}, NewValidationError("planet_id", "must not be negative")
	}
	if uint64(id) > uint64(^uint32(0)) {
		return PlanetID{}, NewValidationError("planet_id", "exceeds uint32 range")
	}
	return PlanetID{value: uint32(id)}, nil
}

// MustNewPlanetID creates a new PlanetID value object, panicking if invalid
// Use this only when the ID is known to be valid (constants, fixtures)
func MustNewPlanetID(id int) PlanetID {
	planetID, err := NewPlanetID(id)
	if err != nil {
		panic(err)
	}
	return planetID
}

// Value returns the numeric value of the PlanetID
func (p PlanetID) Value() uint32 {
	return p.value
}

// String returns a string representation of the PlanetID
func (p PlanetID) String() string {
	return fmt.Sprintf("%d", p.value)
}

// Equals checks if two PlanetIDs are equal
func (p PlanetID) Equals(other PlanetID) bool {
	return p.value == other.value
}

// ExplorerID identifies a visiting explorer. It is only echoed back for correlation.
type ExplorerID uint32

// String returns a string representation of the ExplorerID
func (e ExplorerID) String() string {
	return fmt.Sprintf("%d", uint32(e))
}
