package helpers

import "sync"

// MockRecorder counts decision outcomes reported by a planet AI
type MockRecorder struct {
	mu sync.Mutex

	Ignored            map[string]int
	SunraysAbsorbed    int
	SunraysWasted      int
	RocketsBuilt       int
	RocketBuildsFailed int
	Launches           map[string]int
	AsteroidsMissed    int
	ExplorerRequests   map[string]int // key: request/outcome
}

// NewMockRecorder creates a zeroed recorder
func NewMockRecorder() *MockRecorder {
	return &MockRecorder{
		Ignored:          make(map[string]int),
		Launches:         make(map[string]int),
		ExplorerRequests: make(map[string]int),
	}
}

func (m *MockRecorder) RecordIgnored(_ uint32, event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Ignored[event]++
}

func (m *MockRecorder) RecordSunray(_ uint32, absorbed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if absorbed {
		m.SunraysAbsorbed++
	} else {
		m.SunraysWasted++
	}
}

func (m *MockRecorder) RecordRocketBuild(_ uint32, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.RocketsBuilt++
	} else {
		m.RocketBuildsFailed++
	}
}

func (m *MockRecorder) RecordRocketLaunch(_ uint32, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Launches[source]++
}

func (m *MockRecorder) RecordAsteroidUnanswered(_ uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AsteroidsMissed++
}

func (m *MockRecorder) RecordExplorerRequest(_ uint32, request, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExplorerRequests[request+"/"+outcome]++
}

// TotalIgnored sums ignored events across kinds
func (m *MockRecorder) TotalIgnored() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.Ignored {
		total += n
	}
	return total
}
