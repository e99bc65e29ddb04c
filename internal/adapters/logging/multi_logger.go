package logging

import "github.com/andrescamacho/trip-go/internal/application/common"

// MultiLogger fans every entry out to several loggers
type MultiLogger struct {
	loggers []common.PlanetLogger
}

// NewMultiLogger drops nil loggers
func NewMultiLogger(loggers ...common.PlanetLogger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) Log(level, message string, metadata map[string]interface{}) {
	for _, l := range m.loggers {
		l.Log(level, message, metadata)
	}
}
