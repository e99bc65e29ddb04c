package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/adapters/metrics"
	"github.com/andrescamacho/trip-go/internal/application/ai"
	"github.com/andrescamacho/trip-go/internal/application/mediator"
	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/test/helpers"
)

var _ ai.Recorder = (*metrics.PlanetMetricsCollector)(nil)

// metricValue returns the counter, gauge or histogram-count value of the series matching labels
func metricValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := metrics.GetRegistry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			if !labelsMatch(m, labels) {
				continue
			}
			switch {
			case m.Counter != nil:
				return m.Counter.GetValue()
			case m.Gauge != nil:
				return m.Gauge.GetValue()
			case m.Histogram != nil:
				return float64(m.Histogram.GetSampleCount())
			}
		}
	}
	return 0
}

func labelsMatch(m *dto.Metric, labels map[string]string) bool {
	found := 0
	for _, pair := range m.GetLabel() {
		if v, ok := labels[pair.GetName()]; ok {
			if v != pair.GetValue() {
				return false
			}
			found++
		}
	}
	return found == len(labels)
}

func TestPlanetMetricsCollector_RecordsDecisions(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	collector := metrics.NewPlanetMetricsCollector()
	require.NoError(t, collector.Register())

	// Act
	collector.RecordSunray(1, true)
	collector.RecordSunray(1, false)
	collector.RecordSunray(1, false)
	collector.RecordRocketBuild(1, true)
	collector.RecordRocketLaunch(1, ai.LaunchSourceStock)
	collector.RecordAsteroidUnanswered(1)
	collector.RecordIgnored(1, "sunray")
	collector.RecordExplorerRequest(1, "combine_resource", ai.OutcomeRejected)

	// Assert
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_sunrays_total", map[string]string{"planet_id": "1", "outcome": "absorbed"}))
	assert.Equal(t, 2.0, metricValue(t, "trip_planet_sunrays_total", map[string]string{"planet_id": "1", "outcome": "wasted"}))
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_rocket_builds_total", map[string]string{"status": "success"}))
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_rocket_launches_total", map[string]string{"source": "stock"}))
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_asteroids_unanswered_total", map[string]string{"planet_id": "1"}))
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_events_ignored_total", map[string]string{"event": "sunray"}))
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_explorer_requests_total", map[string]string{"request": "combine_resource", "outcome": "rejected"}))
}

func TestRegister_NoopWithoutRegistry(t *testing.T) {
	metrics.Registry = nil

	assert.NoError(t, metrics.NewPlanetMetricsCollector().Register())
	assert.NoError(t, metrics.NewMessageMetricsCollector().Register())
	assert.False(t, metrics.IsEnabled())
}

func TestPrometheusMiddleware_RecordsStatus(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	collector := metrics.NewMessageMetricsCollector()
	require.NoError(t, collector.Register())

	m := mediator.NewMediator()
	m.RegisterMiddleware(metrics.PrometheusMiddleware(collector))
	require.NoError(t, mediator.RegisterHandler[protocol.SunrayMsg](m, mediator.HandlerFunc(
		func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
			return protocol.Stopped{}, nil
		})))
	require.NoError(t, mediator.RegisterHandler[protocol.StartPlanetAI](m, mediator.HandlerFunc(
		func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
			return protocol.StartPlanetAIResult{}, nil
		})))

	// Act
	_, err := m.Send(context.Background(), protocol.SunrayMsg{})
	require.NoError(t, err)
	_, err = m.Send(context.Background(), protocol.StartPlanetAI{})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_messages_total", map[string]string{"message": "SunrayMsg", "status": metrics.StatusStopped}))
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_messages_total", map[string]string{"message": "StartPlanetAI", "status": metrics.StatusSuccess}))
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_message_duration_seconds", map[string]string{"message": "StartPlanetAI"}))
}

func TestPrometheusMiddleware_NilCollector(t *testing.T) {
	mw := metrics.PrometheusMiddleware(nil)

	resp, err := mw(context.Background(), protocol.KillPlanet{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestSnapshotMetricsRepository_UpdatesGaugesAndDelegates(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	inner := helpers.NewMockSnapshotRepository()
	repo := metrics.NewSnapshotMetricsRepository(inner)
	require.NoError(t, repo.Register())

	state, err := planet.NewPlanetState(shared.MustNewPlanetID(5), planet.PlanetTypeA)
	require.NoError(t, err)
	helpers.ChargeCells(t, state, 0, 1)
	require.NoError(t, state.BuildRocket(0))

	// Act
	require.NoError(t, repo.Save(context.Background(), state.Snapshot()))

	// Assert
	labels := map[string]string{"planet_id": "5", "planet_type": "A"}
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_charged_cells", labels))
	assert.Equal(t, 1.0, metricValue(t, "trip_planet_rocket_ready", labels))
	assert.Equal(t, 1, inner.Count())
}

func TestServer_ServesRegistry(t *testing.T) {
	// Arrange
	metrics.InitRegistry()
	collector := metrics.NewPlanetMetricsCollector()
	require.NoError(t, collector.Register())
	collector.RecordRocketBuild(2, true)

	server, err := metrics.NewServer("127.0.0.1", 0, "/metrics")
	require.NoError(t, err)

	// Act
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "trip_planet_rocket_builds_total")
}

func TestNewServer_RequiresRegistry(t *testing.T) {
	metrics.Registry = nil

	_, err := metrics.NewServer("127.0.0.1", 9090, "")

	assert.Error(t, err)
}
