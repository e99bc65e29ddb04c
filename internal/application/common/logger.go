package common

import "context"

// Log levels for planet diagnostics
const (
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// PlanetLogger provides logging functionality for planet decisions
type PlanetLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger PlanetLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) PlanetLogger {
	if logger, ok := ctx.Value(loggerKey).(PlanetLogger); ok {
		return logger
	}
	return NoOpLogger{}
}

// NoOpLogger discards every entry
type NoOpLogger struct{}

func (NoOpLogger) Log(level, message string, metadata map[string]interface{}) {}
