package shared

import "time"

// LifecycleStatus represents whether a planet AI is processing events
type LifecycleStatus string

const (
	// LifecycleStatusInactive is the initial state: every event is discarded
	LifecycleStatusInactive LifecycleStatus = "INACTIVE"

	// LifecycleStatusActive indicates events are dispatched to the handlers
	LifecycleStatusActive LifecycleStatus = "ACTIVE"
)

// LifecycleStateMachine manages the binary INACTIVE ↔ ACTIVE lifecycle of a planet AI.
//
// Invariants:
// - The machine starts INACTIVE
// - Activate and Deactivate never fail and are idempotent
// - Only the two control transitions change the status; data events never do
// - Clock is injected for testability
type LifecycleStateMachine struct {
	status        LifecycleStatus
	createdAt     time.Time
	updatedAt     time.Time
	activatedAt   *time.Time
	deactivatedAt *time.Time
	transitions   int
	clock         Clock
}

// NewLifecycleStateMachine creates a new lifecycle state machine in INACTIVE state
func NewLifecycleStateMachine(clock Clock) *LifecycleStateMachine {
	if clock == nil {
		clock = NewRealClock()
	}

	now := clock.Now()
	return &LifecycleStateMachine{
		status:    LifecycleStatusInactive,
		createdAt: now,
		updatedAt: now,
		clock:     clock,
	}
}

// Getters

// Status returns the current lifecycle status
func (sm *LifecycleStateMachine) Status() LifecycleStatus {
	return sm.status
}

// CreatedAt returns when the machine was created
func (sm *LifecycleStateMachine) CreatedAt() time.Time {
	return sm.createdAt
}

// UpdatedAt returns when the status last changed
func (sm *LifecycleStateMachine) UpdatedAt() time.Time {
	return sm.updatedAt
}

// ActivatedAt returns when the machine last became ACTIVE (nil if never)
func (sm *LifecycleStateMachine) ActivatedAt() *time.Time {
	return sm.activatedAt
}

// DeactivatedAt returns when the machine last became INACTIVE (nil if never deactivated)
func (sm *LifecycleStateMachine) DeactivatedAt() *time.Time {
	return sm.deactivatedAt
}

// Transitions returns how many effective status changes happened
func (sm *LifecycleStateMachine) Transitions() int {
	return sm.transitions
}

// State transition methods

// Activate moves the machine to ACTIVE. Calling it while ACTIVE is a no-op.
func (sm *LifecycleStateMachine) Activate() {
	if sm.status == LifecycleStatusActive {
		return
	}

	now := sm.clock.Now()
	sm.status = LifecycleStatusActive
	sm.activatedAt = &now
	sm.updatedAt = now
	sm.transitions++
}

// Deactivate moves the machine to INACTIVE. Calling it while INACTIVE is a no-op.
func (sm *LifecycleStateMachine) Deactivate() {
	if sm.status == LifecycleStatusInactive {
		return
	}

	now := sm.clock.Now()
	sm.status = LifecycleStatusInactive
	sm.deactivatedAt = &now
	sm.updatedAt = now
	sm.transitions++
}

// IsActive returns true if events should be processed
func (sm *LifecycleStateMachine) IsActive() bool {
	return sm.status == LifecycleStatusActive
}

// ActiveDuration reports how long the machine has been ACTIVE in its current run.
// Returns 0 while INACTIVE.
func (sm *LifecycleStateMachine) ActiveDuration() time.Duration {
	if sm.status != LifecycleStatusActive || sm.activatedAt == nil {
		return 0
	}
	return sm.clock.Now().Sub(*sm.activatedAt)
}
