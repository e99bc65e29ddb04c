package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PlanetMetricsCollector records planet AI decisions. It implements ai.Recorder.
type PlanetMetricsCollector struct {
	eventsIgnored    *prometheus.CounterVec
	sunrays          *prometheus.CounterVec
	rocketBuilds     *prometheus.CounterVec
	rocketLaunches   *prometheus.CounterVec
	asteroidsMissed  *prometheus.CounterVec
	explorerRequests *prometheus.CounterVec
}

// NewPlanetMetricsCollector creates a new planet metrics collector
func NewPlanetMetricsCollector() *PlanetMetricsCollector {
	return &PlanetMetricsCollector{
		eventsIgnored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "events_ignored_total",
				Help:      "Events discarded because the planet AI was stopped",
			},
			[]string{"planet_id", "event"},
		),

		sunrays: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sunrays_total",
				Help:      "Sunrays received, by whether a cell absorbed them",
			},
			[]string{"planet_id", "outcome"},
		),

		rocketBuilds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rocket_builds_total",
				Help:      "Rocket construction attempts by status",
			},
			[]string{"planet_id", "status"},
		),

		rocketLaunches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rocket_launches_total",
				Help:      "Rockets launched against asteroids, by whether the rocket was stored or built on demand",
			},
			[]string{"planet_id", "source"},
		),

		asteroidsMissed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "asteroids_unanswered_total",
				Help:      "Asteroids the planet could not defend against",
			},
			[]string{"planet_id"},
		),

		explorerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "explorer_requests_total",
				Help:      "Explorer requests by kind and outcome",
			},
			[]string{"planet_id", "request", "outcome"},
		),
	}
}

// Register registers all planet metrics with the Prometheus registry
func (c *PlanetMetricsCollector) Register() error {
	return registerAll(
		c.eventsIgnored,
		c.sunrays,
		c.rocketBuilds,
		c.rocketLaunches,
		c.asteroidsMissed,
		c.explorerRequests,
	)
}

func planetLabel(planetID uint32) string {
	return strconv.FormatUint(uint64(planetID), 10)
}

func (c *PlanetMetricsCollector) RecordIgnored(planetID uint32, event string) {
	c.eventsIgnored.WithLabelValues(planetLabel(planetID), event).Inc()
}

func (c *PlanetMetricsCollector) RecordSunray(planetID uint32, absorbed bool) {
	outcome := "absorbed"
	if !absorbed {
		outcome = "wasted"
	}
	c.sunrays.WithLabelValues(planetLabel(planetID), outcome).Inc()
}

func (c *PlanetMetricsCollector) RecordRocketBuild(planetID uint32, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	c.rocketBuilds.WithLabelValues(planetLabel(planetID), status).Inc()
}

func (c *PlanetMetricsCollector) RecordRocketLaunch(planetID uint32, source string) {
	c.rocketLaunches.WithLabelValues(planetLabel(planetID), source).Inc()
}

func (c *PlanetMetricsCollector) RecordAsteroidUnanswered(planetID uint32) {
	c.asteroidsMissed.WithLabelValues(planetLabel(planetID)).Inc()
}

func (c *PlanetMetricsCollector) RecordExplorerRequest(planetID uint32, request, outcome string) {
	c.explorerRequests.WithLabelValues(planetLabel(planetID), request, outcome).Inc()
}
