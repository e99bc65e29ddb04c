package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/trip-go/internal/application/mediator"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
)

// PrometheusMiddleware creates a middleware that records orchestrator message metrics
//
// This middleware wraps every message dispatched by a planet and records:
// - Handling duration (histogram)
// - Counts by status: success, stopped (answered with Stopped) or error
//
// Message names are extracted via reflection and simplified to remove package prefixes.
// For example: "protocol.SunrayMsg" becomes "SunrayMsg"
func PrometheusMiddleware(collector *MessageMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		messageName := extractMessageName(request)
		start := time.Now()

		response, err := next(ctx, request)

		status := StatusSuccess
		if err != nil {
			status = StatusError
		} else if _, stopped := response.(protocol.Stopped); stopped {
			status = StatusStopped
		}
		collector.RecordMessage(messageName, time.Since(start).Seconds(), status)

		return response, err
	}
}

// extractMessageName extracts a clean message name from the request using reflection
// Examples:
//   - "protocol.SunrayMsg" → "SunrayMsg"
//   - "*protocol.KillPlanet" → "KillPlanet"
func extractMessageName(request mediator.Request) string {
	if request == nil {
		return "UnknownMessage"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")

	parts := strings.Split(fullName, ".")
	return parts[len(parts)-1]
}
