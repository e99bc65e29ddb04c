package planet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/application/ai"
	"github.com/andrescamacho/trip-go/internal/application/common"
	"github.com/andrescamacho/trip-go/internal/application/mediator"
	"github.com/andrescamacho/trip-go/internal/application/planet"
	"github.com/andrescamacho/trip-go/internal/domain/energy"
	domainPlanet "github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/test/helpers"
)

const waitTimeout = 2 * time.Second

type harness struct {
	t         *testing.T
	planet    *planet.Planet
	orchIn    chan protocol.OrchestratorToPlanet
	orchOut   chan protocol.PlanetToOrchestrator
	explIn    chan protocol.ExplorerToPlanet
	done      chan error
	cancel    context.CancelFunc
	logger    *helpers.MockPlanetLogger
	snapshots *helpers.MockSnapshotRepository
}

func startTrip(t *testing.T, opts planet.Options) *harness {
	t.Helper()
	h := &harness{
		t:         t,
		orchIn:    make(chan protocol.OrchestratorToPlanet),
		orchOut:   make(chan protocol.PlanetToOrchestrator, 1),
		explIn:    make(chan protocol.ExplorerToPlanet),
		done:      make(chan error, 1),
		logger:    helpers.NewMockPlanetLogger(),
		snapshots: helpers.NewMockSnapshotRepository(),
	}
	if opts.Logger == nil {
		opts.Logger = h.logger
	}
	if opts.Snapshots == nil {
		opts.Snapshots = h.snapshots
	}

	p, err := planet.NewTrip(0, planet.Channels{
		FromOrchestrator: h.orchIn,
		ToOrchestrator:   h.orchOut,
		FromExplorers:    h.explIn,
	}, ai.Dependencies{}, opts)
	require.NoError(t, err)
	h.planet = p

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- p.Run(ctx) }()
	t.Cleanup(cancel)
	return h
}

func (h *harness) send(msg protocol.OrchestratorToPlanet) protocol.PlanetToOrchestrator {
	h.t.Helper()
	select {
	case h.orchIn <- msg:
	case <-time.After(waitTimeout):
		h.t.Fatalf("planet did not accept %T", msg)
	}
	select {
	case reply := <-h.orchOut:
		return reply
	case <-time.After(waitTimeout):
		h.t.Fatalf("no reply to %T", msg)
		return nil
	}
}

func (h *harness) explore(msg protocol.ExplorerToPlanet) {
	h.t.Helper()
	select {
	case h.explIn <- msg:
	case <-time.After(waitTimeout):
		h.t.Fatalf("planet did not accept explorer message %T", msg)
	}
}

func (h *harness) state() domainPlanet.Snapshot {
	h.t.Helper()
	reply := h.send(protocol.InternalStateRequest{})
	require.IsType(h.t, protocol.InternalStateResponse{}, reply)
	return reply.(protocol.InternalStateResponse).State
}

func TestPlanet_StoppedAnswersStopped(t *testing.T) {
	h := startTrip(t, planet.Options{})

	reply := h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()})
	assert.Equal(t, protocol.Stopped{PlanetID: shared.MustNewPlanetID(0)}, reply)

	reply = h.send(protocol.AsteroidMsg{Asteroid: domainPlanet.NewAsteroid("a-1")})
	assert.IsType(t, protocol.Stopped{}, reply)

	reply = h.send(protocol.InternalStateRequest{})
	assert.IsType(t, protocol.Stopped{}, reply)
}

func TestPlanet_StartSunrayAsteroid(t *testing.T) {
	// Arrange
	h := startTrip(t, planet.Options{})
	require.IsType(t, protocol.StartPlanetAIResult{}, h.send(protocol.StartPlanetAI{}))

	// Act
	ack := h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()})
	before := h.state()
	asteroid := h.send(protocol.AsteroidMsg{Asteroid: domainPlanet.NewAsteroid("a-1")})
	after := h.state()

	// Assert
	assert.IsType(t, protocol.SunrayAck{}, ack)
	assert.True(t, before.HasRocket)
	assert.Zero(t, before.ChargedCellsCount)
	require.IsType(t, protocol.AsteroidAck{}, asteroid)
	require.NotNil(t, asteroid.(protocol.AsteroidAck).Rocket)
	assert.Equal(t, before.RocketID, asteroid.(protocol.AsteroidAck).Rocket.ID())
	assert.False(t, after.HasRocket)
}

func TestPlanet_AsteroidWithoutCellsAcksNilRocket(t *testing.T) {
	h := startTrip(t, planet.Options{})
	h.send(protocol.StartPlanetAI{})

	reply := h.send(protocol.AsteroidMsg{Asteroid: domainPlanet.NewAsteroid("a-2")})

	require.IsType(t, protocol.AsteroidAck{}, reply)
	assert.Nil(t, reply.(protocol.AsteroidAck).Rocket)
}

func TestPlanet_TwentySunrays(t *testing.T) {
	h := startTrip(t, planet.Options{})
	h.send(protocol.StartPlanetAI{})

	for i := 0; i < 20; i++ {
		require.IsType(t, protocol.SunrayAck{}, h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()}))
	}

	snap := h.state()
	assert.Equal(t, 5, snap.ChargedCellsCount)
	assert.True(t, snap.HasRocket)
}

func TestPlanet_StopThenStart(t *testing.T) {
	h := startTrip(t, planet.Options{})
	h.send(protocol.StartPlanetAI{})
	require.IsType(t, protocol.StopPlanetAIResult{}, h.send(protocol.StopPlanetAI{}))

	assert.IsType(t, protocol.Stopped{}, h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()}))

	h.send(protocol.StartPlanetAI{})
	assert.IsType(t, protocol.SunrayAck{}, h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()}))
}

func TestPlanet_ExplorerRoundTrip(t *testing.T) {
	// Arrange
	h := startTrip(t, planet.Options{})
	h.send(protocol.StartPlanetAI{})
	explorerOut := make(chan protocol.PlanetToExplorer, 1)

	// Act
	incoming := h.send(protocol.IncomingExplorerRequest{ExplorerID: 11, Sender: explorerOut})
	h.explore(protocol.SupportedResourceRequest{ExplorerID: 11})

	// Assert
	require.IsType(t, protocol.IncomingExplorerResponse{}, incoming)
	assert.NoError(t, incoming.(protocol.IncomingExplorerResponse).Err)

	select {
	case reply := <-explorerOut:
		require.IsType(t, protocol.SupportedResourceResponse{}, reply)
		assert.Equal(t, []resource.BasicResourceType{resource.Oxygen}, reply.(protocol.SupportedResourceResponse).ResourceList)
	case <-time.After(waitTimeout):
		t.Fatal("explorer got no reply")
	}

	outgoing := h.send(protocol.OutgoingExplorerRequest{ExplorerID: 11})
	require.IsType(t, protocol.OutgoingExplorerResponse{}, outgoing)
	assert.NoError(t, outgoing.(protocol.OutgoingExplorerResponse).Err)
}

func TestPlanet_OutgoingUnknownExplorer(t *testing.T) {
	h := startTrip(t, planet.Options{})
	h.send(protocol.StartPlanetAI{})

	reply := h.send(protocol.OutgoingExplorerRequest{ExplorerID: 99})

	require.IsType(t, protocol.OutgoingExplorerResponse{}, reply)
	assert.Error(t, reply.(protocol.OutgoingExplorerResponse).Err)
}

func TestPlanet_ReplyToUnknownExplorerIsDropped(t *testing.T) {
	h := startTrip(t, planet.Options{})
	h.send(protocol.StartPlanetAI{})

	h.explore(protocol.AvailableEnergyCellRequest{ExplorerID: 5})
	h.state()

	assert.True(t, h.logger.HasEntry(common.LevelWarning, "explorer_unknown"))
}

func TestPlanet_KillEndsRun(t *testing.T) {
	h := startTrip(t, planet.Options{})

	reply := h.send(protocol.KillPlanet{})

	assert.IsType(t, protocol.KillPlanetResult{}, reply)
	select {
	case err := <-h.done:
		assert.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("run did not return after kill")
	}
}

func TestPlanet_CancelEndsRun(t *testing.T) {
	h := startTrip(t, planet.Options{})

	h.cancel()

	select {
	case err := <-h.done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(waitTimeout):
		t.Fatal("run did not return after cancel")
	}
}

func TestPlanet_ClosedOrchestratorEndsRun(t *testing.T) {
	h := startTrip(t, planet.Options{})

	close(h.orchIn)

	select {
	case err := <-h.done:
		assert.ErrorIs(t, err, planet.ErrOrchestratorClosed)
	case <-time.After(waitTimeout):
		t.Fatal("run did not return after close")
	}
}

func TestPlanet_SnapshotsSavedOnChange(t *testing.T) {
	h := startTrip(t, planet.Options{})
	h.send(protocol.StartPlanetAI{})

	h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()})
	h.state()
	h.state()

	// initial state on start, then the rocket
	require.Equal(t, 2, h.snapshots.Count())
	latest, err := h.snapshots.FindLatest(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, latest.HasRocket)
}

func TestPlanet_SnapshotFailureIsNotFatal(t *testing.T) {
	repo := helpers.NewMockSnapshotRepository()
	repo.SaveErr = errors.New("disk full")
	h := startTrip(t, planet.Options{Snapshots: repo})

	h.send(protocol.StartPlanetAI{})
	reply := h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()})

	assert.IsType(t, protocol.SunrayAck{}, reply)
	assert.True(t, h.logger.HasEntry(common.LevelError, "snapshot_save_failed"))
}

func TestPlanet_MiddlewaresSeeEveryOrchestratorMessage(t *testing.T) {
	var seen []string
	mw := func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		resp, err := next(ctx, request)
		if _, ok := resp.(protocol.PlanetToOrchestrator); ok {
			seen = append(seen, "reply")
		}
		return resp, err
	}
	h := startTrip(t, planet.Options{Middlewares: []mediator.Middleware{mw}})

	h.send(protocol.StartPlanetAI{})
	h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()})
	h.send(protocol.KillPlanet{})
	<-h.done

	assert.Len(t, seen, 3)
}

func TestPlanet_MiddlewaresSeeStoppedReplies(t *testing.T) {
	var stopped int
	mw := func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		resp, err := next(ctx, request)
		if _, ok := resp.(protocol.Stopped); ok {
			stopped++
		}
		return resp, err
	}
	h := startTrip(t, planet.Options{Middlewares: []mediator.Middleware{mw}})

	h.send(protocol.SunrayMsg{Sunray: energy.NewSunray()})
	h.send(protocol.InternalStateRequest{})
	h.send(protocol.KillPlanet{})
	<-h.done

	assert.Equal(t, 2, stopped)
}

func TestNew_Validation(t *testing.T) {
	state := helpers.NewTestPlanetState(t, 1, domainPlanet.PlanetTypeB)
	channels := planet.Channels{
		FromOrchestrator: make(chan protocol.OrchestratorToPlanet),
		ToOrchestrator:   make(chan protocol.PlanetToOrchestrator),
		FromExplorers:    make(chan protocol.ExplorerToPlanet),
	}
	tripAI := ai.NewTripAI(ai.Dependencies{})

	_, err := planet.New(nil, tripAI, nil, nil, channels, planet.Options{})
	assert.Error(t, err)

	_, err = planet.New(state, nil, nil, nil, channels, planet.Options{})
	assert.Error(t, err)

	_, err = planet.New(state, tripAI, nil, nil, planet.Channels{}, planet.Options{})
	assert.Error(t, err)

	_, err = planet.New(state, tripAI, resource.NewGenerator(resource.Oxygen, resource.Hydrogen), nil, channels, planet.Options{})
	assert.Error(t, err, "type B allows a single generation recipe")

	_, err = planet.New(state, tripAI, resource.NewGenerator(resource.Oxygen), resource.NewCombinator(resource.Water), channels, planet.Options{})
	assert.NoError(t, err)
}

func TestAssemble_UnknownAI(t *testing.T) {
	bp := planet.TripBlueprint(3)
	bp.AI = "unknown"

	_, err := planet.Assemble(bp, nil, planet.Channels{}, ai.Dependencies{}, planet.Options{})

	assert.Error(t, err)
}
