package ai

import (
	"github.com/andrescamacho/trip-go/internal/application/common"
	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// PassiveAI absorbs sunrays but never builds, launches or answers explorers.
// Useful as a baseline when comparing planet strategies.
type PassiveAI struct {
	lifecycle *shared.LifecycleStateMachine
	logger    common.PlanetLogger
	recorder  Recorder
}

// NewPassiveAI creates an inactive PassiveAI
func NewPassiveAI(deps Dependencies) *PassiveAI {
	deps = deps.withDefaults()
	return &PassiveAI{
		lifecycle: shared.NewLifecycleStateMachine(deps.Clock),
		logger:    deps.Logger,
		recorder:  deps.Recorder,
	}
}

func (a *PassiveAI) Activate(state *planet.PlanetState) {
	a.lifecycle.Activate()
	a.logger.Log(common.LevelInfo, "ai_started", planetMeta(state))
}

func (a *PassiveAI) Deactivate(state *planet.PlanetState) {
	a.lifecycle.Deactivate()
	a.logger.Log(common.LevelInfo, "ai_stopped", planetMeta(state))
}

func (a *PassiveAI) IsActive() bool {
	return a.lifecycle.IsActive()
}

// HandleSunray stores the sunray in the first empty cell, if any
func (a *PassiveAI) HandleSunray(state *planet.PlanetState, _ *resource.Generator, _ *resource.Combinator, sunray energy.Sunray) *protocol.SunrayAck {
	if state == nil {
		return nil
	}
	if !a.lifecycle.IsActive() {
		a.recorder.RecordIgnored(state.ID().Value(), "sunray")
		return nil
	}

	absorbed := false
	if index, ok := state.FirstUnchargedCell(); ok {
		if cell, err := state.Cell(index); err == nil {
			absorbed = cell.Charge(sunray)
		}
	}
	a.recorder.RecordSunray(state.ID().Value(), absorbed)
	return &protocol.SunrayAck{PlanetID: state.ID()}
}

func (a *PassiveAI) HandleInternalStateRequest(state *planet.PlanetState, _ *resource.Generator, _ *resource.Combinator) planet.Snapshot {
	if state == nil {
		return planet.Snapshot{}
	}
	return state.Snapshot()
}

func (a *PassiveAI) HandleExplorerMsg(state *planet.PlanetState, _ *resource.Generator, _ *resource.Combinator, _ protocol.ExplorerToPlanet) protocol.PlanetToExplorer {
	return nil
}

func (a *PassiveAI) HandleAsteroid(state *planet.PlanetState, _ *resource.Generator, _ *resource.Combinator) *planet.Rocket {
	if state != nil && a.lifecycle.IsActive() {
		a.logger.Log(common.LevelWarning, "asteroid_unanswered: passive", planetMeta(state))
		a.recorder.RecordAsteroidUnanswered(state.ID().Value())
	}
	return nil
}
