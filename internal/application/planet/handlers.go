package planet

import (
	"context"
	"fmt"

	"github.com/andrescamacho/trip-go/internal/application/common"
	"github.com/andrescamacho/trip-go/internal/application/mediator"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
)

// registerHandlers binds every orchestrator message type to its handler
func (p *Planet) registerHandlers() error {
	registrations := []error{
		mediator.RegisterHandler[protocol.StartPlanetAI](p.mediator, mediator.HandlerFunc(p.handleStart)),
		mediator.RegisterHandler[protocol.StopPlanetAI](p.mediator, mediator.HandlerFunc(p.handleStop)),
		mediator.RegisterHandler[protocol.SunrayMsg](p.mediator, mediator.HandlerFunc(p.handleSunray)),
		mediator.RegisterHandler[protocol.AsteroidMsg](p.mediator, mediator.HandlerFunc(p.handleAsteroid)),
		mediator.RegisterHandler[protocol.InternalStateRequest](p.mediator, mediator.HandlerFunc(p.handleInternalState)),
		mediator.RegisterHandler[protocol.IncomingExplorerRequest](p.mediator, mediator.HandlerFunc(p.handleIncomingExplorer)),
		mediator.RegisterHandler[protocol.OutgoingExplorerRequest](p.mediator, mediator.HandlerFunc(p.handleOutgoingExplorer)),
		mediator.RegisterHandler[protocol.KillPlanet](p.mediator, mediator.HandlerFunc(p.handleKill)),
	}
	for _, err := range registrations {
		if err != nil {
			return fmt.Errorf("failed to register planet handler: %w", err)
		}
	}
	return nil
}

// stoppedGate answers Stopped to every message except lifecycle control while the AI is inactive
func (p *Planet) stoppedGate(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
	switch request.(type) {
	case protocol.StartPlanetAI, protocol.StopPlanetAI, protocol.KillPlanet:
		return next(ctx, request)
	}
	if p.ai.IsActive() {
		return next(ctx, request)
	}

	meta := p.meta()
	meta["msg"] = fmt.Sprintf("%T", request)
	common.LoggerFromContext(ctx).Log(common.LevelDebug, "msg_ignored: planet_stopped", meta)
	return protocol.Stopped{PlanetID: p.state.ID()}, nil
}

func (p *Planet) handleStart(ctx context.Context, _ mediator.Request) (mediator.Response, error) {
	p.ai.Activate(p.state)
	return protocol.StartPlanetAIResult{PlanetID: p.state.ID()}, nil
}

func (p *Planet) handleStop(ctx context.Context, _ mediator.Request) (mediator.Response, error) {
	p.ai.Deactivate(p.state)
	return protocol.StopPlanetAIResult{PlanetID: p.state.ID()}, nil
}

func (p *Planet) handleSunray(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	msg := request.(protocol.SunrayMsg)
	ack := p.ai.HandleSunray(p.state, p.gen, p.comb, msg.Sunray)
	if ack == nil {
		return nil, nil
	}
	return *ack, nil
}

func (p *Planet) handleAsteroid(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	msg := request.(protocol.AsteroidMsg)
	rocket := p.ai.HandleAsteroid(p.state, p.gen, p.comb)

	meta := p.meta()
	meta["asteroid_id"] = msg.Asteroid.ID()
	meta["defended"] = rocket != nil
	common.LoggerFromContext(ctx).Log(common.LevelDebug, "asteroid_ack", meta)

	return protocol.AsteroidAck{PlanetID: p.state.ID(), Rocket: rocket}, nil
}

func (p *Planet) handleInternalState(ctx context.Context, _ mediator.Request) (mediator.Response, error) {
	return protocol.InternalStateResponse{
		PlanetID: p.state.ID(),
		State:    p.ai.HandleInternalStateRequest(p.state, p.gen, p.comb),
	}, nil
}

func (p *Planet) handleIncomingExplorer(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	msg := request.(protocol.IncomingExplorerRequest)
	resp := protocol.IncomingExplorerResponse{PlanetID: p.state.ID(), ExplorerID: msg.ExplorerID}

	if msg.Sender == nil {
		resp.Err = fmt.Errorf("explorer %s has no reply channel", msg.ExplorerID)
		return resp, nil
	}

	p.explorers[msg.ExplorerID] = msg.Sender
	return resp, nil
}

func (p *Planet) handleOutgoingExplorer(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	msg := request.(protocol.OutgoingExplorerRequest)
	resp := protocol.OutgoingExplorerResponse{PlanetID: p.state.ID(), ExplorerID: msg.ExplorerID}

	if _, ok := p.explorers[msg.ExplorerID]; !ok {
		resp.Err = fmt.Errorf("explorer %s is not on planet %s", msg.ExplorerID, p.state.ID())
		return resp, nil
	}

	delete(p.explorers, msg.ExplorerID)
	return resp, nil
}

func (p *Planet) handleKill(ctx context.Context, _ mediator.Request) (mediator.Response, error) {
	p.ai.Deactivate(p.state)
	p.killed = true
	return protocol.KillPlanetResult{PlanetID: p.state.ID()}, nil
}
