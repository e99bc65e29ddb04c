package planet

import (
	"context"
	"time"
)

// Snapshot is a read-only view of a planet's state, safe to send to other goroutines
type Snapshot struct {
	PlanetID          uint32
	PlanetType        PlanetType
	EnergyCells       []bool
	ChargedCellsCount int
	HasRocket         bool
	RocketID          string
}

// Equal compares two snapshots cell by cell
func (s Snapshot) Equal(other Snapshot) bool {
	if s.PlanetID != other.PlanetID || s.PlanetType != other.PlanetType ||
		s.ChargedCellsCount != other.ChargedCellsCount || s.HasRocket != other.HasRocket ||
		s.RocketID != other.RocketID || len(s.EnergyCells) != len(other.EnergyCells) {
		return false
	}
	for i := range s.EnergyCells {
		if s.EnergyCells[i] != other.EnergyCells[i] {
			return false
		}
	}
	return true
}

// SnapshotRecord is a snapshot with the time it was taken
type SnapshotRecord struct {
	Snapshot
	TakenAt time.Time
}

// SnapshotRepository persists planet snapshots
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot Snapshot) error
	FindLatest(ctx context.Context, planetID uint32) (*SnapshotRecord, error)
	List(ctx context.Context, planetID uint32, limit int) ([]SnapshotRecord, error)
}
