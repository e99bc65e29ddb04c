package energy

import "github.com/andrescamacho/trip-go/internal/domain/shared"

// EnergyCell is a single slot of a planet's reserve: either empty or holding one sunray's charge.
type EnergyCell struct {
	charge *Sunray
}

// NewEnergyCell creates an empty cell
func NewEnergyCell() *EnergyCell {
	return &EnergyCell{}
}

// IsCharged reports whether the cell holds a charge
func (c *EnergyCell) IsCharged() bool {
	return c.charge != nil
}

// Charge stores the sunray in the cell. A charged cell keeps its existing
// charge and the sunray is wasted; the return value reports whether it was absorbed.
func (c *EnergyCell) Charge(s Sunray) bool {
	if c.charge != nil {
		return false
	}
	c.charge = &s
	return true
}

// Discharge consumes the stored charge
func (c *EnergyCell) Discharge() error {
	if c.charge == nil {
		return shared.NewCellNotChargedError(-1)
	}
	c.charge = nil
	return nil
}

// ChargeID returns the identifier of the stored sunray, or "" if empty
func (c *EnergyCell) ChargeID() string {
	if c.charge == nil {
		return ""
	}
	return c.charge.ID()
}
