package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/trip-go/internal/domain/planet"
)

// MockSnapshotRepository is an in-memory SnapshotRepository for testing
type MockSnapshotRepository struct {
	mu        sync.Mutex
	Snapshots []planet.Snapshot
	SaveErr   error
}

// NewMockSnapshotRepository creates an empty repository
func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{}
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snapshot planet.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Snapshots = append(m.Snapshots, snapshot)
	return nil
}

func (m *MockSnapshotRepository) FindLatest(ctx context.Context, planetID uint32) (*planet.SnapshotRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Snapshots) - 1; i >= 0; i-- {
		if m.Snapshots[i].PlanetID == planetID {
			return &planet.SnapshotRecord{Snapshot: m.Snapshots[i], TakenAt: FixedTime}, nil
		}
	}
	return nil, nil
}

func (m *MockSnapshotRepository) List(ctx context.Context, planetID uint32, limit int) ([]planet.SnapshotRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []planet.SnapshotRecord
	for i := len(m.Snapshots) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if m.Snapshots[i].PlanetID == planetID {
			out = append(out, planet.SnapshotRecord{Snapshot: m.Snapshots[i], TakenAt: FixedTime})
		}
	}
	return out, nil
}

// Count returns how many snapshots were saved
func (m *MockSnapshotRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Snapshots)
}
