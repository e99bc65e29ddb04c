package scenario

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/trip-go/internal/application/planet"
	"github.com/andrescamacho/trip-go/internal/domain/energy"
	domainPlanet "github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// Link holds both ends of the channels between an orchestrator and one planet
type Link struct {
	ToPlanet        chan protocol.OrchestratorToPlanet
	FromPlanet      chan protocol.PlanetToOrchestrator
	ExplorersPlanet chan protocol.ExplorerToPlanet
}

// NewLink creates unbuffered request channels and a buffered reply channel
func NewLink() *Link {
	return &Link{
		ToPlanet:        make(chan protocol.OrchestratorToPlanet),
		FromPlanet:      make(chan protocol.PlanetToOrchestrator, 1),
		ExplorersPlanet: make(chan protocol.ExplorerToPlanet),
	}
}

// PlanetChannels returns the planet's side of the link
func (l *Link) PlanetChannels() planet.Channels {
	return planet.Channels{
		FromOrchestrator: l.ToPlanet,
		ToOrchestrator:   l.FromPlanet,
		FromExplorers:    l.ExplorersPlanet,
	}
}

// Exchange is one message sent to the planet and what came back. A nil Reply means no response.
type Exchange struct {
	Step   int
	Action string
	Sent   interface{}
	Reply  interface{}
}

// Driver plays scripts against a running planet, pacing sends with a token bucket
type Driver struct {
	link      *Link
	limiter   *rate.Limiter
	timeout   time.Duration
	explorers map[shared.ExplorerID]chan protocol.PlanetToExplorer
	asteroids int
	killed    bool
}

// NewDriver creates a driver sending at most eventsPerSecond events with the given burst
func NewDriver(link *Link, eventsPerSecond float64, burst int, timeout time.Duration) *Driver {
	if burst < 1 {
		burst = 1
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Driver{
		link:      link,
		limiter:   rate.NewLimiter(rate.Limit(eventsPerSecond), burst),
		timeout:   timeout,
		explorers: make(map[shared.ExplorerID]chan protocol.PlanetToExplorer),
	}
}

// Play runs every step of script in order. onExchange, if set, sees each exchange as it completes.
// Play stops after a kill step.
func (d *Driver) Play(ctx context.Context, script *Script, onExchange func(Exchange)) ([]Exchange, error) {
	if script == nil {
		return nil, fmt.Errorf("scenario cannot be nil")
	}

	var exchanges []Exchange
	for i, step := range script.Steps {
		for n := 0; n < step.Times(); n++ {
			if d.killed {
				return exchanges, nil
			}

			exchange, err := d.playStep(ctx, step)
			if err != nil {
				return exchanges, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
			}
			exchange.Step = i + 1
			exchange.Action = step.Action

			exchanges = append(exchanges, exchange)
			if onExchange != nil {
				onExchange(exchange)
			}
		}
	}
	return exchanges, nil
}

func (d *Driver) playStep(ctx context.Context, step Step) (Exchange, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return Exchange{}, err
	}

	if step.Action == ActionExplorer {
		return d.explorerRequest(ctx, step)
	}

	msg, err := d.orchestratorMessage(step)
	if err != nil {
		return Exchange{}, err
	}

	reply, err := d.call(ctx, msg)
	if err != nil {
		return Exchange{}, err
	}

	switch r := reply.(type) {
	case protocol.KillPlanetResult:
		d.killed = true
	case protocol.OutgoingExplorerResponse:
		if r.Err == nil {
			delete(d.explorers, r.ExplorerID)
		}
	case protocol.IncomingExplorerResponse:
		if r.Err != nil {
			delete(d.explorers, r.ExplorerID)
		}
	}

	return Exchange{Sent: msg, Reply: reply}, nil
}

func (d *Driver) orchestratorMessage(step Step) (protocol.OrchestratorToPlanet, error) {
	switch step.Action {
	case ActionStart:
		return protocol.StartPlanetAI{}, nil
	case ActionStop:
		return protocol.StopPlanetAI{}, nil
	case ActionSunray:
		return protocol.SunrayMsg{Sunray: energy.NewSunray()}, nil
	case ActionAsteroid:
		d.asteroids++
		return protocol.AsteroidMsg{Asteroid: domainPlanet.NewAsteroid(fmt.Sprintf("asteroid-%d", d.asteroids))}, nil
	case ActionInternalState:
		return protocol.InternalStateRequest{}, nil
	case ActionArrive:
		id := shared.ExplorerID(step.Explorer)
		inbox := make(chan protocol.PlanetToExplorer, 1)
		d.explorers[id] = inbox
		return protocol.IncomingExplorerRequest{ExplorerID: id, Sender: inbox}, nil
	case ActionLeave:
		return protocol.OutgoingExplorerRequest{ExplorerID: shared.ExplorerID(step.Explorer)}, nil
	case ActionKill:
		return protocol.KillPlanet{}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", step.Action)
	}
}

// explorerRequest sends an explorer message, then uses an internal state request as a
// barrier: once it is answered the planet has finished with the explorer message.
func (d *Driver) explorerRequest(ctx context.Context, step Step) (Exchange, error) {
	id := shared.ExplorerID(step.Explorer)
	inbox, ok := d.explorers[id]
	if !ok {
		return Exchange{}, fmt.Errorf("explorer %s has not arrived", id)
	}

	msg, err := explorerMessage(id, step)
	if err != nil {
		return Exchange{}, err
	}

	select {
	case d.link.ExplorersPlanet <- msg:
	case <-ctx.Done():
		return Exchange{}, ctx.Err()
	case <-time.After(d.timeout):
		return Exchange{}, fmt.Errorf("planet did not accept explorer message")
	}

	if _, err := d.call(ctx, protocol.InternalStateRequest{}); err != nil {
		return Exchange{}, err
	}

	exchange := Exchange{Sent: msg}
	select {
	case reply := <-inbox:
		exchange.Reply = reply
	default:
	}
	return exchange, nil
}

func explorerMessage(id shared.ExplorerID, step Step) (protocol.ExplorerToPlanet, error) {
	switch step.Request {
	case RequestSupportedResource:
		return protocol.SupportedResourceRequest{ExplorerID: id}, nil
	case RequestSupportedCombination:
		return protocol.SupportedCombinationRequest{ExplorerID: id}, nil
	case RequestAvailableEnergyCell:
		return protocol.AvailableEnergyCellRequest{ExplorerID: id}, nil
	case RequestGenerateResource:
		kind, err := resource.ParseBasicResourceType(step.Resource)
		if err != nil {
			return nil, err
		}
		return protocol.GenerateResourceRequest{ExplorerID: id, Resource: kind}, nil
	case RequestCombineResource:
		target, err := resource.ParseComplexResourceType(step.Resource)
		if err != nil {
			return nil, err
		}
		req, err := resource.NewRecipeRequest(target)
		if err != nil {
			return nil, err
		}
		return protocol.CombineResourceRequest{ExplorerID: id, Request: req}, nil
	default:
		return nil, fmt.Errorf("unknown explorer request %q", step.Request)
	}
}

// call sends msg and waits for the planet's reply
func (d *Driver) call(ctx context.Context, msg protocol.OrchestratorToPlanet) (protocol.PlanetToOrchestrator, error) {
	timer := time.NewTimer(d.timeout)
	defer timer.Stop()

	select {
	case d.link.ToPlanet <- msg:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, fmt.Errorf("planet did not accept %T", msg)
	}

	select {
	case reply := <-d.link.FromPlanet:
		return reply, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, fmt.Errorf("no reply to %T within %s", msg, d.timeout)
	}
}
