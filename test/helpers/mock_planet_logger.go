package helpers

import (
	"strings"
	"sync"
)

// LogEntry is one captured log call
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// MockPlanetLogger records every log call for assertions
type MockPlanetLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewMockPlanetLogger creates an empty recording logger
func NewMockPlanetLogger() *MockPlanetLogger {
	return &MockPlanetLogger{}
}

// Log implements common.PlanetLogger
func (m *MockPlanetLogger) Log(level, message string, metadata map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make(map[string]interface{}, len(metadata))
	for k, v := range metadata {
		copied[k] = v
	}
	m.entries = append(m.entries, LogEntry{Level: level, Message: message, Metadata: copied})
}

// Entries returns a copy of the captured entries
func (m *MockPlanetLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasEntry reports whether an entry with the level contains substring
func (m *MockPlanetLogger) HasEntry(level, substring string) bool {
	for _, e := range m.Entries() {
		if e.Level == level && strings.Contains(e.Message, substring) {
			return true
		}
	}
	return false
}

// CountLevel returns how many entries were logged at level
func (m *MockPlanetLogger) CountLevel(level string) int {
	count := 0
	for _, e := range m.Entries() {
		if e.Level == level {
			count++
		}
	}
	return count
}

// Reset drops every captured entry
func (m *MockPlanetLogger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
