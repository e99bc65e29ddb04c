package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/andrescamacho/trip-go/internal/application/common"
)

// SlogPlanetLogger writes planet diagnostics through log/slog
type SlogPlanetLogger struct {
	logger *slog.Logger
}

// NewSlogPlanetLogger wraps an existing slog logger
func NewSlogPlanetLogger(logger *slog.Logger) *SlogPlanetLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogPlanetLogger{logger: logger}
}

// NewSlogPlanetLoggerFor builds a logger writing to w.
// format is "text" or "json"; level is one of DEBUG, INFO, WARNING, ERROR.
func NewSlogPlanetLoggerFor(w io.Writer, format, level string) (*SlogPlanetLogger, error) {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	return NewSlogPlanetLogger(slog.New(handler)), nil
}

// Log implements common.PlanetLogger. Metadata keys are emitted in sorted order.
func (l *SlogPlanetLogger) Log(level, message string, metadata map[string]interface{}) {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		slogLevel = slog.LevelInfo
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}

	l.logger.LogAttrs(context.Background(), slogLevel, message, attrs...)
}

// ParseLevel maps planet log levels onto slog levels
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case common.LevelDebug:
		return slog.LevelDebug, nil
	case "", common.LevelInfo:
		return slog.LevelInfo, nil
	case common.LevelWarning, "WARN":
		return slog.LevelWarn, nil
	case common.LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}
