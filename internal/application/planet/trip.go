package planet

import (
	"fmt"

	"github.com/andrescamacho/trip-go/internal/application/ai"
	domainPlanet "github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// Blueprint describes a planet to assemble
type Blueprint struct {
	ID         int
	Type       domainPlanet.PlanetType
	AI         string
	Generator  *resource.Generator
	Combinator *resource.Combinator
}

// Assemble builds the state, AI and runner described by bp
func Assemble(bp Blueprint, registry *ai.Registry, channels Channels, deps ai.Dependencies, opts Options) (*Planet, error) {
	id, err := shared.NewPlanetID(bp.ID)
	if err != nil {
		return nil, err
	}

	state, err := domainPlanet.NewPlanetState(id, bp.Type)
	if err != nil {
		return nil, err
	}

	if registry == nil {
		registry = ai.DefaultRegistry()
	}
	if deps.Logger == nil {
		deps.Logger = opts.Logger
	}
	planetAI, err := registry.New(bp.AI, deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create planet ai: %w", err)
	}

	return New(state, planetAI, bp.Generator, bp.Combinator, channels, opts)
}

// TripBlueprint is the oxygen-producing, rocket-capable planet: type A with an oxygen generator
func TripBlueprint(id int) Blueprint {
	return Blueprint{
		ID:         id,
		Type:       domainPlanet.PlanetTypeA,
		AI:         "trip",
		Generator:  resource.NewGenerator(resource.Oxygen),
		Combinator: resource.NewCombinator(),
	}
}

// NewTrip assembles a trip planet with the given id
func NewTrip(id int, channels Channels, deps ai.Dependencies, opts Options) (*Planet, error) {
	return Assemble(TripBlueprint(id), ai.DefaultRegistry(), channels, deps, opts)
}
