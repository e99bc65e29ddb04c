package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Message handling statuses
const (
	StatusSuccess = "success"
	StatusStopped = "stopped"
	StatusError   = "error"
)

// MessageMetricsCollector handles orchestrator message handling metrics
type MessageMetricsCollector struct {
	messageDuration *prometheus.HistogramVec
	messagesTotal   *prometheus.CounterVec
}

// NewMessageMetricsCollector creates a new message metrics collector
func NewMessageMetricsCollector() *MessageMetricsCollector {
	return &MessageMetricsCollector{
		// Handlers are synchronous and in-memory: sub-millisecond buckets
		messageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "message_duration_seconds",
				Help:      "Orchestrator message handling duration distribution",
				Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			},
			[]string{"message", "status"},
		),

		messagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "messages_total",
				Help:      "Total number of orchestrator messages handled by type and status",
			},
			[]string{"message", "status"},
		),
	}
}

// Register registers all message metrics with the Prometheus registry
func (c *MessageMetricsCollector) Register() error {
	return registerAll(c.messageDuration, c.messagesTotal)
}

// RecordMessage records message handling metrics
func (c *MessageMetricsCollector) RecordMessage(messageName string, duration float64, status string) {
	c.messageDuration.WithLabelValues(messageName, status).Observe(duration)
	c.messagesTotal.WithLabelValues(messageName, status).Inc()
}
