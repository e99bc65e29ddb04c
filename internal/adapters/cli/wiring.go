package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/trip-go/internal/adapters/logging"
	"github.com/andrescamacho/trip-go/internal/adapters/metrics"
	"github.com/andrescamacho/trip-go/internal/adapters/persistence"
	"github.com/andrescamacho/trip-go/internal/application/ai"
	"github.com/andrescamacho/trip-go/internal/application/common"
	"github.com/andrescamacho/trip-go/internal/application/mediator"
	"github.com/andrescamacho/trip-go/internal/application/planet"
	domainPlanet "github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/internal/infrastructure/config"
	"github.com/andrescamacho/trip-go/internal/infrastructure/database"
)

// runtime holds the collaborators built from configuration for one planet
type runtime struct {
	logger      common.PlanetLogger
	recorder    ai.Recorder
	snapshots   domainPlanet.SnapshotRepository
	middlewares []mediator.Middleware
	closers     []func() error
}

// newRuntime wires logging, persistence and metrics for planetID.
// Diagnostics that cannot be logged through the planet logger go to errOut.
func newRuntime(cfg *config.Config, planetID uint32, errOut io.Writer) (*runtime, error) {
	rt := &runtime{}

	out, err := logOutput(cfg.Logging, rt)
	if err != nil {
		return nil, err
	}
	slogLogger, err := logging.NewSlogPlanetLoggerFor(out, cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.logger = slogLogger

	var db *gorm.DB
	if cfg.Database.Enabled {
		db, err = openDatabase(cfg)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.closers = append(rt.closers, func() error { return database.Close(db) })
		rt.snapshots = persistence.NewGormPlanetSnapshotRepository(db, shared.NewRealClock())
	}

	if cfg.Logging.Persist && db != nil {
		logRepo := persistence.NewGormPlanetLogRepository(db, shared.NewRealClock(), cfg.Logging.DedupWindow)
		persistLevel := cfg.Logging.PersistLevel
		if persistLevel == "" {
			persistLevel = cfg.Logging.Level
		}
		repoLogger, err := logging.NewRepositoryPlanetLogger(logRepo, planetID, persistLevel, errOut)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.logger = logging.NewMultiLogger(slogLogger, repoLogger)
	}

	if cfg.Metrics.Enabled {
		if err := rt.enableMetrics(cfg.Metrics, errOut); err != nil {
			rt.Close()
			return nil, err
		}
	}

	return rt, nil
}

func logOutput(cfg config.LoggingConfig, rt *runtime) (io.Writer, error) {
	switch cfg.Output {
	case "stdout":
		return os.Stdout, nil
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		rt.closers = append(rt.closers, f.Close)
		return f, nil
	default:
		return os.Stderr, nil
	}
}

// enableMetrics registers the collectors and starts the HTTP endpoint
func (rt *runtime) enableMetrics(cfg config.MetricsConfig, errOut io.Writer) error {
	if !metrics.IsEnabled() {
		metrics.InitRegistry()
	}

	planetCollector := metrics.NewPlanetMetricsCollector()
	messageCollector := metrics.NewMessageMetricsCollector()
	snapshotMetrics := metrics.NewSnapshotMetricsRepository(rt.snapshots)
	for _, register := range []func() error{planetCollector.Register, messageCollector.Register, snapshotMetrics.Register} {
		if err := register(); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	rt.recorder = planetCollector
	rt.snapshots = snapshotMetrics
	rt.middlewares = append(rt.middlewares, metrics.PrometheusMiddleware(messageCollector))

	server, err := metrics.NewServer(cfg.Host, cfg.Port, cfg.Path)
	if err != nil {
		return err
	}
	errCh := server.Start()
	go func() {
		if err, ok := <-errCh; ok && err != nil {
			fmt.Fprintf(errOut, "metrics server stopped: %v\n", err)
		}
	}()
	rt.closers = append(rt.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	})
	return nil
}

// planetOptions returns the runner options for this runtime
func (rt *runtime) planetOptions() planet.Options {
	return planet.Options{
		Logger:      rt.logger,
		Snapshots:   rt.snapshots,
		Middlewares: rt.middlewares,
	}
}

// dependencies returns the AI dependencies for this runtime
func (rt *runtime) dependencies() ai.Dependencies {
	return ai.Dependencies{
		Logger:   rt.logger,
		Recorder: rt.recorder,
	}
}

// Close releases resources in reverse order of acquisition
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		_ = rt.closers[i]()
	}
	rt.closers = nil
}
