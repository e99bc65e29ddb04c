package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

func TestLifecycleStateMachine_StartsInactive(t *testing.T) {
	sm := shared.NewLifecycleStateMachine(shared.NewMockClock(time.Time{}))

	assert.Equal(t, shared.LifecycleStatusInactive, sm.Status())
	assert.False(t, sm.IsActive())
	assert.Nil(t, sm.ActivatedAt())
	assert.Nil(t, sm.DeactivatedAt())
	assert.Zero(t, sm.Transitions())
}

func TestLifecycleStateMachine_ActivateDeactivate(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Time{})
	sm := shared.NewLifecycleStateMachine(clock)

	// Act
	sm.Activate()
	clock.Advance(30 * time.Second)

	// Assert
	assert.True(t, sm.IsActive())
	require.NotNil(t, sm.ActivatedAt())
	assert.Equal(t, 30*time.Second, sm.ActiveDuration())

	sm.Deactivate()
	assert.False(t, sm.IsActive())
	require.NotNil(t, sm.DeactivatedAt())
	assert.Equal(t, clock.Now(), *sm.DeactivatedAt())
	assert.Zero(t, sm.ActiveDuration())
	assert.Equal(t, 2, sm.Transitions())
}

func TestLifecycleStateMachine_TransitionsAreIdempotent(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	sm := shared.NewLifecycleStateMachine(clock)

	sm.Activate()
	first := *sm.ActivatedAt()
	clock.Advance(time.Minute)
	sm.Activate()

	assert.Equal(t, first, *sm.ActivatedAt(), "second activate must not restamp")
	assert.Equal(t, 1, sm.Transitions())

	sm.Deactivate()
	sm.Deactivate()
	assert.Equal(t, 2, sm.Transitions())
	assert.Equal(t, shared.LifecycleStatusInactive, sm.Status())
}

func TestLifecycleStateMachine_NilClockFallsBackToRealClock(t *testing.T) {
	sm := shared.NewLifecycleStateMachine(nil)

	assert.False(t, sm.CreatedAt().IsZero())
}
