package persistence

import (
	"time"
)

// PlanetSnapshotModel represents the planet_snapshots table
type PlanetSnapshotModel struct {
	ID                int       `gorm:"column:id;primaryKey;autoIncrement"`
	PlanetID          uint32    `gorm:"column:planet_id;not null;index:idx_planet_snapshots_planet_taken"`
	PlanetType        string    `gorm:"column:planet_type;not null"`
	EnergyCells       string    `gorm:"column:energy_cells;not null"` // one '0'/'1' per cell, index order
	ChargedCellsCount int       `gorm:"column:charged_cells_count;not null;default:0"`
	HasRocket         bool      `gorm:"column:has_rocket;not null;default:false"`
	RocketID          string    `gorm:"column:rocket_id"`
	TakenAt           time.Time `gorm:"column:taken_at;not null;index:idx_planet_snapshots_planet_taken"`
}

func (PlanetSnapshotModel) TableName() string {
	return "planet_snapshots"
}

// PlanetLogModel represents the planet_logs table
type PlanetLogModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	PlanetID  uint32    `gorm:"column:planet_id;not null;index:idx_planet_logs_planet_timestamp"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index:idx_planet_logs_planet_timestamp"`
	Level     string    `gorm:"column:level;not null;default:'INFO'"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Metadata  string    `gorm:"column:metadata;type:text"` // JSON stored as string
}

func (PlanetLogModel) TableName() string {
	return "planet_logs"
}
