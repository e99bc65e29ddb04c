package shared_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

func TestNewPlanetID(t *testing.T) {
	id, err := shared.NewPlanetID(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), id.Value())
	assert.Equal(t, "0", id.String())

	_, err = shared.NewPlanetID(-1)
	var validationErr *shared.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "planet_id", validationErr.Field)
}

func TestPlanetID_Equals(t *testing.T) {
	assert.True(t, shared.MustNewPlanetID(7).Equals(shared.MustNewPlanetID(7)))
	assert.False(t, shared.MustNewPlanetID(7).Equals(shared.MustNewPlanetID(8)))
}

func TestMustNewPlanetID_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { shared.MustNewPlanetID(-5) })
}
