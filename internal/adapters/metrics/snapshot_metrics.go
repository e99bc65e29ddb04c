package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/trip-go/internal/domain/planet"
)

// SnapshotMetricsRepository decorates a SnapshotRepository: every saved snapshot
// also updates the planet state gauges. A nil inner repository only updates gauges.
type SnapshotMetricsRepository struct {
	inner        planet.SnapshotRepository
	chargedCells *prometheus.GaugeVec
	rocketReady  *prometheus.GaugeVec
}

// NewSnapshotMetricsRepository wraps inner
func NewSnapshotMetricsRepository(inner planet.SnapshotRepository) *SnapshotMetricsRepository {
	return &SnapshotMetricsRepository{
		inner: inner,
		chargedCells: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "charged_cells",
				Help:      "Number of charged energy cells",
			},
			[]string{"planet_id", "planet_type"},
		),
		rocketReady: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rocket_ready",
				Help:      "1 when a rocket is stored and ready to launch",
			},
			[]string{"planet_id", "planet_type"},
		),
	}
}

// Register registers the state gauges with the Prometheus registry
func (r *SnapshotMetricsRepository) Register() error {
	return registerAll(r.chargedCells, r.rocketReady)
}

func (r *SnapshotMetricsRepository) Save(ctx context.Context, snapshot planet.Snapshot) error {
	labels := []string{planetLabel(snapshot.PlanetID), string(snapshot.PlanetType)}
	r.chargedCells.WithLabelValues(labels...).Set(float64(snapshot.ChargedCellsCount))
	ready := 0.0
	if snapshot.HasRocket {
		ready = 1
	}
	r.rocketReady.WithLabelValues(labels...).Set(ready)

	if r.inner == nil {
		return nil
	}
	return r.inner.Save(ctx, snapshot)
}

func (r *SnapshotMetricsRepository) FindLatest(ctx context.Context, planetID uint32) (*planet.SnapshotRecord, error) {
	if r.inner == nil {
		return nil, nil
	}
	return r.inner.FindLatest(ctx, planetID)
}

func (r *SnapshotMetricsRepository) List(ctx context.Context, planetID uint32, limit int) ([]planet.SnapshotRecord, error) {
	if r.inner == nil {
		return nil, nil
	}
	return r.inner.List(ctx, planetID, limit)
}
