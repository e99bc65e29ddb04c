package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// GormPlanetSnapshotRepository implements planet.SnapshotRepository using GORM
type GormPlanetSnapshotRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormPlanetSnapshotRepository creates a new snapshot repository.
// If clock is nil, uses RealClock.
func NewGormPlanetSnapshotRepository(db *gorm.DB, clock shared.Clock) *GormPlanetSnapshotRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormPlanetSnapshotRepository{db: db, clock: clock}
}

// Save stores a snapshot stamped with the current time
func (r *GormPlanetSnapshotRepository) Save(ctx context.Context, snapshot planet.Snapshot) error {
	model := snapshotToModel(snapshot)
	model.TakenAt = r.clock.Now()

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save snapshot for planet %d: %w", snapshot.PlanetID, err)
	}
	return nil
}

// FindLatest returns the most recent snapshot of a planet, or nil if none was stored
func (r *GormPlanetSnapshotRepository) FindLatest(ctx context.Context, planetID uint32) (*planet.SnapshotRecord, error) {
	var model PlanetSnapshotModel
	result := r.db.WithContext(ctx).
		Where("planet_id = ?", planetID).
		Order("taken_at DESC").
		Order("id DESC").
		First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest snapshot: %w", result.Error)
	}

	record := modelToRecord(&model)
	return &record, nil
}

// List returns up to limit snapshots of a planet, newest first. limit <= 0 returns all.
func (r *GormPlanetSnapshotRepository) List(ctx context.Context, planetID uint32, limit int) ([]planet.SnapshotRecord, error) {
	var models []PlanetSnapshotModel

	query := r.db.WithContext(ctx).
		Where("planet_id = ?", planetID).
		Order("taken_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	records := make([]planet.SnapshotRecord, len(models))
	for i := range models {
		records[i] = modelToRecord(&models[i])
	}
	return records, nil
}

func snapshotToModel(s planet.Snapshot) *PlanetSnapshotModel {
	var cells strings.Builder
	for _, charged := range s.EnergyCells {
		if charged {
			cells.WriteByte('1')
		} else {
			cells.WriteByte('0')
		}
	}

	return &PlanetSnapshotModel{
		PlanetID:          s.PlanetID,
		PlanetType:        string(s.PlanetType),
		EnergyCells:       cells.String(),
		ChargedCellsCount: s.ChargedCellsCount,
		HasRocket:         s.HasRocket,
		RocketID:          s.RocketID,
	}
}

func modelToRecord(m *PlanetSnapshotModel) planet.SnapshotRecord {
	cells := make([]bool, len(m.EnergyCells))
	for i := 0; i < len(m.EnergyCells); i++ {
		cells[i] = m.EnergyCells[i] == '1'
	}

	return planet.SnapshotRecord{
		Snapshot: planet.Snapshot{
			PlanetID:          m.PlanetID,
			PlanetType:        planet.PlanetType(m.PlanetType),
			EnergyCells:       cells,
			ChargedCellsCount: m.ChargedCellsCount,
			HasRocket:         m.HasRocket,
			RocketID:          m.RocketID,
		},
		TakenAt: m.TakenAt,
	}
}
