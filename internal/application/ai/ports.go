package ai

import (
	"github.com/andrescamacho/trip-go/internal/application/common"
	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// PlanetAI decides how a planet reacts to each delivered event.
//
// Handlers run synchronously on the scheduler's goroutine and own the state only
// for the duration of the call. A nil return value means "no response".
type PlanetAI interface {
	Activate(state *planet.PlanetState)
	Deactivate(state *planet.PlanetState)
	IsActive() bool

	HandleSunray(state *planet.PlanetState, gen *resource.Generator, comb *resource.Combinator, sunray energy.Sunray) *protocol.SunrayAck
	HandleInternalStateRequest(state *planet.PlanetState, gen *resource.Generator, comb *resource.Combinator) planet.Snapshot
	HandleExplorerMsg(state *planet.PlanetState, gen *resource.Generator, comb *resource.Combinator, msg protocol.ExplorerToPlanet) protocol.PlanetToExplorer
	HandleAsteroid(state *planet.PlanetState, gen *resource.Generator, comb *resource.Combinator) *planet.Rocket
}

// Recorder receives decision outcomes for instrumentation
type Recorder interface {
	RecordIgnored(planetID uint32, event string)
	RecordSunray(planetID uint32, absorbed bool)
	RecordRocketBuild(planetID uint32, success bool)
	RecordRocketLaunch(planetID uint32, source string)
	RecordAsteroidUnanswered(planetID uint32)
	RecordExplorerRequest(planetID uint32, request, outcome string)
}

// Launch sources reported to Recorder.RecordRocketLaunch
const (
	LaunchSourceStock = "stock"
	LaunchSourceBuilt = "built"
)

// Explorer request outcomes reported to Recorder.RecordExplorerRequest
const (
	OutcomeAnswered    = "answered"
	OutcomeRejected    = "rejected"
	OutcomeUnanswered  = "unanswered"
	OutcomeUnsupported = "unsupported"
)

// Dependencies are the collaborators shared by every AI variant
type Dependencies struct {
	Logger   common.PlanetLogger
	Recorder Recorder
	Clock    shared.Clock
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = common.NoOpLogger{}
	}
	if d.Recorder == nil {
		d.Recorder = noOpRecorder{}
	}
	if d.Clock == nil {
		d.Clock = shared.NewRealClock()
	}
	return d
}

type noOpRecorder struct{}

func (noOpRecorder) RecordIgnored(uint32, string) {}
func (noOpRecorder) RecordSunray(uint32, bool) {}
func (noOpRecorder) RecordRocketBuild(uint32, bool) {}
func (noOpRecorder) RecordRocketLaunch(uint32, string) {}
func (noOpRecorder) RecordAsteroidUnanswered(uint32) {}
func (noOpRecorder) RecordExplorerRequest(uint32, string, string) {}
