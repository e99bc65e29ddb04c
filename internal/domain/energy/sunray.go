package energy

import "github.com/google/uuid"

// Sunray is a single pulse of absorbable energy. It is consumed at most once:
// charging a cell moves the sunray into the cell.
type Sunray struct {
	id string
}

// NewSunray creates a sunray with a fresh identifier
func NewSunray() Sunray {
	return Sunray{id: uuid.New().String()}
}

// ID returns the sunray identifier (empty for the zero value)
func (s Sunray) ID() string {
	return s.id
}
