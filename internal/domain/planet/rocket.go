package planet

import (
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/pkg/utils"
)

// Rocket is a defensive asset built from one charged cell
type Rocket struct {
	id string
}

func newRocket(planetID shared.PlanetID) *Rocket {
	return &Rocket{id: utils.GenerateRocketID(planetID.Value())}
}

// ID returns the rocket identifier
func (r *Rocket) ID() string {
	return r.id
}

// Asteroid is the threat a rocket is launched against
type Asteroid struct {
	id string
}

// NewAsteroid creates an asteroid with the given identifier
func NewAsteroid(id string) Asteroid {
	return Asteroid{id: id}
}

// ID returns the asteroid identifier
func (a Asteroid) ID() string {
	return a.id
}
