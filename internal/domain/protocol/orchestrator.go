package protocol

import (
	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// OrchestratorToPlanet is a message sent by the orchestrator to a planet
type OrchestratorToPlanet interface {
	orchestratorToPlanet()
}

type StartPlanetAI struct{}

type StopPlanetAI struct{}

type SunrayMsg struct {
	Sunray energy.Sunray
}

type AsteroidMsg struct {
	Asteroid planet.Asteroid
}

type InternalStateRequest struct{}

// IncomingExplorerRequest announces an explorer arriving on the planet.
// Replies to that explorer are sent on Sender.
type IncomingExplorerRequest struct {
	ExplorerID shared.ExplorerID
	Sender     chan<- PlanetToExplorer
}

// OutgoingExplorerRequest announces an explorer leaving the planet
type OutgoingExplorerRequest struct {
	ExplorerID shared.ExplorerID
}

type KillPlanet struct{}

func (StartPlanetAI) orchestratorToPlanet() {}
func (StopPlanetAI) orchestratorToPlanet() {}
func (SunrayMsg) orchestratorToPlanet() {}
func (AsteroidMsg) orchestratorToPlanet() {}
func (InternalStateRequest) orchestratorToPlanet() {}
func (IncomingExplorerRequest) orchestratorToPlanet() {}
func (OutgoingExplorerRequest) orchestratorToPlanet() {}
func (KillPlanet) orchestratorToPlanet() {}

// PlanetToOrchestrator is a message sent by a planet to the orchestrator
type PlanetToOrchestrator interface {
	Planet() shared.PlanetID
	planetToOrchestrator()
}

type StartPlanetAIResult struct {
	PlanetID shared.PlanetID
}

type StopPlanetAIResult struct {
	PlanetID shared.PlanetID
}

// SunrayAck acknowledges that a sunray was received, not that anything was built
type SunrayAck struct {
	PlanetID shared.PlanetID
}

// AsteroidAck carries the rocket launched against the asteroid; nil means the planet is defenceless
type AsteroidAck struct {
	PlanetID shared.PlanetID
	Rocket   *planet.Rocket
}

type InternalStateResponse struct {
	PlanetID shared.PlanetID
	State    planet.Snapshot
}

type IncomingExplorerResponse struct {
	PlanetID   shared.PlanetID
	ExplorerID shared.ExplorerID
	Err        error
}

type OutgoingExplorerResponse struct {
	PlanetID   shared.PlanetID
	ExplorerID shared.ExplorerID
	Err        error
}

type KillPlanetResult struct {
	PlanetID shared.PlanetID
}

// Stopped is returned for orchestrator messages received while the planet AI is stopped
type Stopped struct {
	PlanetID shared.PlanetID
}

func (m StartPlanetAIResult) Planet() shared.PlanetID { return m.PlanetID }
func (m StopPlanetAIResult) Planet() shared.PlanetID { return m.PlanetID }
func (m SunrayAck) Planet() shared.PlanetID { return m.PlanetID }
func (m AsteroidAck) Planet() shared.PlanetID { return m.PlanetID }
func (m InternalStateResponse) Planet() shared.PlanetID { return m.PlanetID }
func (m IncomingExplorerResponse) Planet() shared.PlanetID { return m.PlanetID }
func (m OutgoingExplorerResponse) Planet() shared.PlanetID { return m.PlanetID }
func (m KillPlanetResult) Planet() shared.PlanetID { return m.PlanetID }
func (m Stopped) Planet() shared.PlanetID { return m.PlanetID }

func (StartPlanetAIResult) planetToOrchestrator() {}
func (StopPlanetAIResult) planetToOrchestrator() {}
func (SunrayAck) planetToOrchestrator() {}
func (AsteroidAck) planetToOrchestrator() {}
func (InternalStateResponse) planetToOrchestrator() {}
func (IncomingExplorerResponse) planetToOrchestrator() {}
func (OutgoingExplorerResponse) planetToOrchestrator() {}
func (KillPlanetResult) planetToOrchestrator() {}
func (Stopped) planetToOrchestrator() {}
