package ai

import (
	"github.com/andrescamacho/trip-go/internal/application/common"
	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/pkg/utils"
)

// TripAI is the decision engine of an oxygen-producing, rocket-capable planet.
//
// While inactive every event is discarded without touching the state. While active:
//   - a sunray charges the first empty cell and immediately tries to turn it into a rocket
//   - an asteroid launches the stored rocket, or builds one from the first charged cell
//   - explorers can list recipes, count charged cells and ask for oxygen;
//     combination requests are always rejected with their operands handed back
//
// None of the degradation paths surface as errors: the only visible failure is a nil response.
type TripAI struct {
	lifecycle *shared.LifecycleStateMachine
	logger    common.PlanetLogger
	recorder  Recorder
}

// NewTripAI creates an inactive TripAI
func NewTripAI(deps Dependencies) *TripAI {
	deps = deps.withDefaults()
	return &TripAI{
		lifecycle: shared.NewLifecycleStateMachine(deps.Clock),
		logger:    deps.Logger,
		recorder:  deps.Recorder,
	}
}

// Lifecycle exposes the underlying state machine for inspection
func (a *TripAI) Lifecycle() *shared.LifecycleStateMachine {
	return a.lifecycle
}

// Activate enables event processing
func (a *TripAI) Activate(state *planet.PlanetState) {
	a.lifecycle.Activate()
	a.logger.Log(common.LevelInfo, "ai_started", planetMeta(state))
}

// Deactivate disables event processing until the next Activate
func (a *TripAI) Deactivate(state *planet.PlanetState) {
	a.lifecycle.Deactivate()
	a.logger.Log(common.LevelInfo, "ai_stopped", planetMeta(state))
}

// IsActive reports whether events are processed
func (a *TripAI) IsActive() bool {
	return a.lifecycle.IsActive()
}

// isRunning is the guard every handler calls before touching state
func (a *TripAI) isRunning(state *planet.PlanetState, event string) bool {
	if a.lifecycle.IsActive() {
		return true
	}
	meta := planetMeta(state)
	meta["event"] = event
	a.logger.Log(common.LevelDebug, "msg_ignored: ai_stopped", meta)
	a.recorder.RecordIgnored(planetIDValue(state), event)
	return false
}

// HandleSunray charges the first empty cell and tries to build a rocket from it.
// The acknowledgment only means the sunray was received.
func (a *TripAI) HandleSunray(state *planet.PlanetState, _ *resource.Generator, _ *resource.Combinator, sunray energy.Sunray) *protocol.SunrayAck {
	if state == nil || !a.isRunning(state, "sunray") {
		return nil
	}

	a.logger.Log(common.LevelDebug, "incoming_sunray", planetMeta(state))
	a.chargeFirstEmptyCell(state, sunray)

	return &protocol.SunrayAck{PlanetID: state.ID()}
}

func (a *TripAI) chargeFirstEmptyCell(state *planet.PlanetState, sunray energy.Sunray) {
	index, ok := state.FirstUnchargedCell()
	if !ok {
		a.logger.Log(common.LevelWarning, "no_uncharged_cells", planetMeta(state))
		a.recorder.RecordSunray(state.ID().Value(), false)
		return
	}

	cell, err := state.Cell(index)
	if err != nil || !cell.Charge(sunray) {
		a.logger.Log(common.LevelError, "cell_charge_rejected", cellMeta(state, index))
		a.recorder.RecordSunray(state.ID().Value(), false)
		return
	}
	a.logger.Log(common.LevelDebug, "cell_charged", cellMeta(state, index))
	a.recorder.RecordSunray(state.ID().Value(), true)

	a.buildRocket(state, index)
}

// buildRocket is the single path that turns a charged cell into a rocket.
// Failures are recorded and reported as false; they never reach the originator.
func (a *TripAI) buildRocket(state *planet.PlanetState, index int) bool {
	if err := state.BuildRocket(index); err != nil {
		meta := cellMeta(state, index)
		meta["error"] = err.Error()
		a.logger.Log(common.LevelWarning, "rocket_build_failed", meta)
		a.recorder.RecordRocketBuild(state.ID().Value(), false)
		return false
	}
	a.logger.Log(common.LevelInfo, "rocket_built", cellMeta(state, index))
	a.recorder.RecordRocketBuild(state.ID().Value(), true)
	return true
}

// HandleAsteroid launches the stored rocket, or builds and launches one from the
// first charged cell. Returns nil when the planet cannot defend itself.
func (a *TripAI) HandleAsteroid(state *planet.PlanetState, _ *resource.Generator, _ *resource.Combinator) *planet.Rocket {
	if state == nil || !a.isRunning(state, "asteroid") {
		return nil
	}

	if state.HasRocket() {
		rocket := state.TakeRocket()
		a.logger.Log(common.LevelInfo, "rocket_launched", rocketMeta(state, rocket, LaunchSourceStock))
		a.recorder.RecordRocketLaunch(state.ID().Value(), LaunchSourceStock)
		return rocket
	}

	index, ok := state.FirstChargedCell()
	if !ok {
		a.logger.Log(common.LevelWarning, "asteroid_unanswered: no_charged_cells", planetMeta(state))
		a.recorder.RecordAsteroidUnanswered(state.ID().Value())
		return nil
	}

	if !a.buildRocket(state, index) {
		a.recorder.RecordAsteroidUnanswered(state.ID().Value())
		return nil
	}

	rocket := state.TakeRocket()
	a.logger.Log(common.LevelInfo, "rocket_launched", rocketMeta(state, rocket, LaunchSourceBuilt))
	a.recorder.RecordRocketLaunch(state.ID().Value(), LaunchSourceBuilt)
	return rocket
}

// HandleInternalStateRequest reports the planet's state. It answers regardless of the lifecycle.
func (a *TripAI) HandleInternalStateRequest(state *planet.PlanetState, _ *resource.Generator, _ *resource.Combinator) planet.Snapshot {
	if state == nil {
		return planet.Snapshot{}
	}
	return state.Snapshot()
}

// HandleExplorerMsg answers a visiting explorer
func (a *TripAI) HandleExplorerMsg(state *planet.PlanetState, gen *resource.Generator, comb *resource.Combinator, msg protocol.ExplorerToPlanet) protocol.PlanetToExplorer {
	if state == nil || !a.isRunning(state, "explorer") {
		return nil
	}

	switch m := msg.(type) {
	case protocol.SupportedResourceRequest:
		a.explorerLog(state, m, common.LevelDebug, "supported_resource_response")
		a.recorder.RecordExplorerRequest(state.ID().Value(), "supported_resource", OutcomeAnswered)
		return protocol.SupportedResourceResponse{ResourceList: gen.AllAvailableRecipes()}

	case protocol.SupportedCombinationRequest:
		a.explorerLog(state, m, common.LevelDebug, "supported_combination_response")
		a.recorder.RecordExplorerRequest(state.ID().Value(), "supported_combination", OutcomeAnswered)
		return protocol.SupportedCombinationResponse{CombinationList: comb.AllAvailableRecipes()}

	case protocol.GenerateResourceRequest:
		return a.generateResource(state, gen, m)

	case protocol.CombineResourceRequest:
		left, right := m.Request.Operands()
		a.explorerLog(state, m, common.LevelDebug, "unsupported_combination: "+m.Request.String())
		a.recorder.RecordExplorerRequest(state.ID().Value(), "combine_resource", OutcomeRejected)
		return protocol.CombineResourceResponse{
			Failure: &protocol.CombineFailure{
				Reason: protocol.UnsupportedCombinationReason,
				Left:   left,
				Right:  right,
			},
		}

	case protocol.AvailableEnergyCellRequest:
		count := utils.ClampToUint32(state.ChargedCellsCount())
		meta := explorerMeta(state, m)
		meta["available_cells"] = count
		a.logger.Log(common.LevelDebug, "available_energy_cell_response", meta)
		a.recorder.RecordExplorerRequest(state.ID().Value(), "available_energy_cell", OutcomeAnswered)
		return protocol.AvailableEnergyCellResponse{AvailableCells: count}

	default:
		a.logger.Log(common.LevelDebug, "explorer_msg_unknown", planetMeta(state))
		a.recorder.RecordExplorerRequest(state.ID().Value(), "unknown", OutcomeUnsupported)
		return nil
	}
}

// generateResource only knows the oxygen path; every other kind goes unanswered
func (a *TripAI) generateResource(state *planet.PlanetState, gen *resource.Generator, m protocol.GenerateResourceRequest) protocol.PlanetToExplorer {
	if m.Resource != resource.Oxygen {
		a.explorerLog(state, m, common.LevelDebug, "generate_resource_unsupported: "+string(m.Resource))
		a.recorder.RecordExplorerRequest(state.ID().Value(), "generate_resource", OutcomeUnsupported)
		return nil
	}

	index, ok := state.FirstChargedCell()
	if !ok {
		a.explorerLog(state, m, common.LevelWarning, "generate_oxygen_failed: no_charged_cells")
		a.recorder.RecordExplorerRequest(state.ID().Value(), "generate_resource", OutcomeUnanswered)
		return nil
	}

	cell, err := state.Cell(index)
	if err != nil {
		a.explorerLog(state, m, common.LevelError, "generate_oxygen_failed: "+err.Error())
		a.recorder.RecordExplorerRequest(state.ID().Value(), "generate_resource", OutcomeUnanswered)
		return nil
	}

	oxygen, err := gen.MakeOxygen(cell)
	if err != nil {
		a.explorerLog(state, m, common.LevelWarning, "generate_oxygen_failed: "+err.Error())
		a.recorder.RecordExplorerRequest(state.ID().Value(), "generate_resource", OutcomeUnanswered)
		return nil
	}

	a.explorerLog(state, m, common.LevelDebug, "oxygen_generated")
	a.recorder.RecordExplorerRequest(state.ID().Value(), "generate_resource", OutcomeAnswered)
	return protocol.GenerateResourceResponse{Resource: &oxygen}
}

func (a *TripAI) explorerLog(state *planet.PlanetState, msg protocol.ExplorerToPlanet, level, message string) {
	a.logger.Log(level, message, explorerMeta(state, msg))
}

func planetIDValue(state *planet.PlanetState) uint32 {
	if state == nil {
		return 0
	}
	return state.ID().Value()
}

func planetMeta(state *planet.PlanetState) map[string]interface{} {
	return map[string]interface{}{"planet_id": planetIDValue(state)}
}

func cellMeta(state *planet.PlanetState, index int) map[string]interface{} {
	meta := planetMeta(state)
	meta["cell_index"] = index
	return meta
}

func rocketMeta(state *planet.PlanetState, rocket *planet.Rocket, source string) map[string]interface{} {
	meta := planetMeta(state)
	meta["source"] = source
	if rocket != nil {
		meta["rocket_id"] = rocket.ID()
	}
	return meta
}

func explorerMeta(state *planet.PlanetState, msg protocol.ExplorerToPlanet) map[string]interface{} {
	meta := planetMeta(state)
	if msg != nil {
		meta["explorer_id"] = uint32(msg.Explorer())
	}
	return meta
}
