package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/andrescamacho/trip-go/internal/adapters/persistence"
)

// RepositoryPlanetLogger persists diagnostics of one planet to the log repository
type RepositoryPlanetLogger struct {
	repo     persistence.PlanetLogRepository
	planetID uint32
	minLevel slog.Level
	timeout  time.Duration
	errOut   io.Writer
}

// NewRepositoryPlanetLogger creates a logger that stores entries at or above minLevel.
// Write failures are reported on errOut and never propagate.
func NewRepositoryPlanetLogger(repo persistence.PlanetLogRepository, planetID uint32, minLevel string, errOut io.Writer) (*RepositoryPlanetLogger, error) {
	level, err := ParseLevel(minLevel)
	if err != nil {
		return nil, err
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &RepositoryPlanetLogger{
		repo:     repo,
		planetID: planetID,
		minLevel: level,
		timeout:  5 * time.Second,
		errOut:   errOut,
	}, nil
}

// Log implements common.PlanetLogger
func (l *RepositoryPlanetLogger) Log(level, message string, metadata map[string]interface{}) {
	if parsed, err := ParseLevel(level); err == nil && parsed < l.minLevel {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	if err := l.repo.Log(ctx, l.planetID, message, level, metadata); err != nil {
		fmt.Fprintf(l.errOut, "[%s] [planet %d] ERROR: failed to persist log: %v\n",
			time.Now().Format(time.RFC3339), l.planetID, err)
	}
}
