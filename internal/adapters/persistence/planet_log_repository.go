package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// PlanetLogRepository manages planet diagnostic log persistence
type PlanetLogRepository interface {
	// Log writes a log entry to the database with deduplication
	Log(ctx context.Context, planetID uint32, message, level string, metadata map[string]interface{}) error

	// GetLogs retrieves logs for a planet with optional filtering
	GetLogs(ctx context.Context, planetID uint32, limit int, level *string, since *time.Time) ([]PlanetLogEntry, error)

	// GetLogsWithOffset retrieves logs for a planet with pagination support
	GetLogsWithOffset(ctx context.Context, planetID uint32, limit, offset int, level *string, since *time.Time) ([]PlanetLogEntry, error)
}

// PlanetLogEntry represents a log entry
type PlanetLogEntry struct {
	ID        int
	PlanetID  uint32
	Timestamp time.Time
	Level     string
	Message   string
	Metadata  map[string]interface{}
}

// GormPlanetLogRepository is a GORM-based implementation
type GormPlanetLogRepository struct {
	db    *gorm.DB
	clock shared.Clock

	// A full reserve logs "no_uncharged_cells" on every sunray; the cache keeps one per window
	dedupCache   map[string]time.Time // key: planetID|message, value: last logged time
	dedupMu      sync.Mutex
	dedupWindow  time.Duration
	dedupMaxSize int
}

// NewGormPlanetLogRepository creates a new planet log repository.
// If clock is nil, uses RealClock (production behavior). A zero window disables deduplication.
func NewGormPlanetLogRepository(db *gorm.DB, clock shared.Clock, dedupWindow time.Duration) *GormPlanetLogRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormPlanetLogRepository{
		db:           db,
		clock:        clock,
		dedupCache:   make(map[string]time.Time),
		dedupWindow:  dedupWindow,
		dedupMaxSize: 10000,
	}
}

// Log writes a log entry with time-windowed deduplication
func (r *GormPlanetLogRepository) Log(ctx context.Context, planetID uint32, message, level string, metadata map[string]interface{}) error {
	now := r.clock.Now()

	if r.isDuplicate(planetID, message, now) {
		return nil
	}

	var metadataJSON string
	if len(metadata) > 0 {
		if jsonBytes, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	logEntry := &PlanetLogModel{
		PlanetID:  planetID,
		Timestamp: now,
		Level:     level,
		Message:   message,
		Metadata:  metadataJSON,
	}

	return r.db.WithContext(ctx).Create(logEntry).Error
}

func (r *GormPlanetLogRepository) isDuplicate(planetID uint32, message string, now time.Time) bool {
	if r.dedupWindow <= 0 {
		return false
	}

	cacheKey := fmt.Sprintf("%d|%s", planetID, message)

	r.dedupMu.Lock()
	defer r.dedupMu.Unlock()

	if lastLogged, exists := r.dedupCache[cacheKey]; exists && now.Sub(lastLogged) < r.dedupWindow {
		return true
	}

	if len(r.dedupCache) >= r.dedupMaxSize {
		r.cleanupDedupCache(now)
	}

	r.dedupCache[cacheKey] = now
	return false
}

// cleanupDedupCache removes old entries from the deduplication cache
// Must be called while holding dedupMu lock
func (r *GormPlanetLogRepository) cleanupDedupCache(now time.Time) {
	cutoff := now.Add(-r.dedupWindow)
	for key, timestamp := range r.dedupCache {
		if timestamp.Before(cutoff) {
			delete(r.dedupCache, key)
		}
	}
}

// GetLogs retrieves logs for a planet with optional filtering, newest first
func (r *GormPlanetLogRepository) GetLogs(ctx context.Context, planetID uint32, limit int, level *string, since *time.Time) ([]PlanetLogEntry, error) {
	return r.GetLogsWithOffset(ctx, planetID, limit, 0, level, since)
}

// GetLogsWithOffset retrieves logs for a planet with pagination support
func (r *GormPlanetLogRepository) GetLogsWithOffset(ctx context.Context, planetID uint32, limit, offset int, level *string, since *time.Time) ([]PlanetLogEntry, error) {
	var models []PlanetLogModel

	query := r.db.WithContext(ctx).Where("planet_id = ?", planetID)

	if level != nil {
		query = query.Where("level = ?", *level)
	}

	if since != nil {
		query = query.Where("timestamp > ?", *since)
	}

	query = query.Order("timestamp DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]PlanetLogEntry, len(models))
	for i, model := range models {
		var metadata map[string]interface{}
		if model.Metadata != "" {
			if err := json.Unmarshal([]byte(model.Metadata), &metadata); err != nil {
				metadata = nil
			}
		}

		entries[i] = PlanetLogEntry{
			ID:        model.ID,
			PlanetID:  model.PlanetID,
			Timestamp: model.Timestamp,
			Level:     model.Level,
			Message:   model.Message,
			Metadata:  metadata,
		}
	}

	return entries, nil
}
