package planet

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/trip-go/internal/application/ai"
	"github.com/andrescamacho/trip-go/internal/application/common"
	"github.com/andrescamacho/trip-go/internal/application/mediator"
	domainPlanet "github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// ErrOrchestratorClosed is returned by Run when the orchestrator channel is closed
var ErrOrchestratorClosed = errors.New("orchestrator channel closed")

// Channels are the planet's links to the rest of the galaxy
type Channels struct {
	FromOrchestrator <-chan protocol.OrchestratorToPlanet
	ToOrchestrator   chan<- protocol.PlanetToOrchestrator
	FromExplorers    <-chan protocol.ExplorerToPlanet
}

// Options are the optional collaborators of a planet
type Options struct {
	Logger      common.PlanetLogger
	Snapshots   domainPlanet.SnapshotRepository
	Middlewares []mediator.Middleware
}

// Planet is the scheduler of one planet: it owns the state and serializes every
// event delivered to the AI. Run is the only method that blocks.
type Planet struct {
	state *domainPlanet.PlanetState
	ai    ai.PlanetAI
	gen   *resource.Generator
	comb  *resource.Combinator

	fromOrchestrator <-chan protocol.OrchestratorToPlanet
	toOrchestrator   chan<- protocol.PlanetToOrchestrator
	fromExplorers    <-chan protocol.ExplorerToPlanet
	explorers        map[shared.ExplorerID]chan<- protocol.PlanetToExplorer

	mediator  mediator.Mediator
	snapshots domainPlanet.SnapshotRepository
	lastSaved *domainPlanet.Snapshot
	logger    common.PlanetLogger
	killed    bool
}

// New wires a planet. The catalogs must respect the planet type's recipe limits.
func New(
	state *domainPlanet.PlanetState,
	planetAI ai.PlanetAI,
	gen *resource.Generator,
	comb *resource.Combinator,
	channels Channels,
	opts Options,
) (*Planet, error) {
	if state == nil {
		return nil, fmt.Errorf("planet state cannot be nil")
	}
	if planetAI == nil {
		return nil, fmt.Errorf("planet ai cannot be nil")
	}
	if channels.FromOrchestrator == nil || channels.ToOrchestrator == nil || channels.FromExplorers == nil {
		return nil, fmt.Errorf("planet channels cannot be nil")
	}
	if err := state.Type().ValidateCatalogs(gen.Len(), comb.Len()); err != nil {
		return nil, fmt.Errorf("invalid catalogs: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = common.NoOpLogger{}
	}

	p := &Planet{
		state:            state,
		ai:               planetAI,
		gen:              gen,
		comb:             comb,
		fromOrchestrator: channels.FromOrchestrator,
		toOrchestrator:   channels.ToOrchestrator,
		fromExplorers:    channels.FromExplorers,
		explorers:        make(map[shared.ExplorerID]chan<- protocol.PlanetToExplorer),
		mediator:         mediator.NewMediator(),
		snapshots:        opts.Snapshots,
		logger:           logger,
	}

	// Caller middlewares wrap the gate so they also observe Stopped replies
	for _, mw := range opts.Middlewares {
		p.mediator.RegisterMiddleware(mw)
	}
	p.mediator.RegisterMiddleware(p.stoppedGate)
	if err := p.registerHandlers(); err != nil {
		return nil, err
	}
	return p, nil
}

// ID returns the planet identifier
func (p *Planet) ID() shared.PlanetID {
	return p.state.ID()
}

// Run processes events until KillPlanet, context cancellation or the orchestrator
// channel closing. KillPlanet returns nil.
func (p *Planet) Run(ctx context.Context) error {
	ctx = common.WithLogger(ctx, p.logger)
	p.logger.Log(common.LevelInfo, "planet_running", p.meta())

	fromExplorers := p.fromExplorers
	for {
		select {
		case <-ctx.Done():
			p.logger.Log(common.LevelInfo, "planet_cancelled", p.meta())
			return ctx.Err()

		case msg, ok := <-p.fromOrchestrator:
			if !ok {
				p.logger.Log(common.LevelWarning, "orchestrator_disconnected", p.meta())
				return ErrOrchestratorClosed
			}
			if err := p.handleOrchestratorMsg(ctx, msg); err != nil {
				return err
			}
			if p.killed {
				p.logger.Log(common.LevelInfo, "planet_killed", p.meta())
				return nil
			}

		case msg, ok := <-fromExplorers:
			if !ok {
				fromExplorers = nil
				continue
			}
			if err := p.handleExplorerMsg(ctx, msg); err != nil {
				return err
			}
		}
	}
}

func (p *Planet) handleOrchestratorMsg(ctx context.Context, msg protocol.OrchestratorToPlanet) error {
	if msg == nil {
		return nil
	}

	resp, err := p.mediator.Send(ctx, msg)
	if err != nil {
		p.logger.Log(common.LevelError, "orchestrator_msg_failed: "+err.Error(), p.meta())
		return nil
	}
	p.persistIfChanged(ctx)

	reply, ok := resp.(protocol.PlanetToOrchestrator)
	if !ok || reply == nil {
		return nil
	}
	return p.sendToOrchestrator(ctx, reply)
}

func (p *Planet) handleExplorerMsg(ctx context.Context, msg protocol.ExplorerToPlanet) error {
	if msg == nil {
		return nil
	}

	reply := p.ai.HandleExplorerMsg(p.state, p.gen, p.comb, msg)
	p.persistIfChanged(ctx)
	if reply == nil {
		return nil
	}

	sender, ok := p.explorers[msg.Explorer()]
	if !ok {
		meta := p.meta()
		meta["explorer_id"] = uint32(msg.Explorer())
		p.logger.Log(common.LevelWarning, "explorer_unknown: reply dropped", meta)
		return nil
	}

	select {
	case sender <- reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Planet) sendToOrchestrator(ctx context.Context, reply protocol.PlanetToOrchestrator) error {
	select {
	case p.toOrchestrator <- reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// persistIfChanged stores a snapshot when the observable state differs from the last one saved.
// Persistence failures are logged and never stop the planet.
func (p *Planet) persistIfChanged(ctx context.Context) {
	if p.snapshots == nil {
		return
	}

	snap := p.state.Snapshot()
	if p.lastSaved != nil && p.lastSaved.Equal(snap) {
		return
	}

	if err := p.snapshots.Save(ctx, snap); err != nil {
		meta := p.meta()
		meta["error"] = err.Error()
		p.logger.Log(common.LevelError, "snapshot_save_failed", meta)
		return
	}
	p.lastSaved = &snap
}

func (p *Planet) meta() map[string]interface{} {
	return map[string]interface{}{"planet_id": p.state.ID().Value()}
}
