package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionLegalPairs(t *testing.T) {
	tests := []struct {
		name  string
		from  AppointmentStatus
		to    AppointmentStatus
		actor Actor
	}{
		{"business confirms pending", StatusPending, StatusConfirmed, ActorBusiness},
		{"business declines pending", StatusPending, StatusCancelled, ActorBusiness},
		{"customer withdraws pending", StatusPending, StatusCancelled, ActorCustomer},
		{"business completes confirmed", StatusConfirmed, StatusCompleted, ActorBusiness},
		{"business cancels confirmed", StatusConfirmed, StatusCancelled, ActorBusiness},
		{"customer cancels confirmed", StatusConfirmed, StatusCancelled, ActorCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Transition(tt.from, tt.to, tt.actor))
		})
	}
}

func TestTransitionIllegalPairs(t *testing.T) {
	tests := []struct {
		name  string
		from  AppointmentStatus
		to    AppointmentStatus
		actor Actor
	}{
		{"customer confirms pending", StatusPending, StatusConfirmed, ActorCustomer},
		{"customer completes confirmed", StatusConfirmed, StatusCompleted, ActorCustomer},
		{"pending straight to completed", StatusPending, StatusCompleted, ActorBusiness},
		{"confirmed back to pending", StatusConfirmed, StatusPending, ActorBusiness},
		{"completed to cancelled", StatusCompleted, StatusCancelled, ActorBusiness},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, ActorBusiness},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, ActorBusiness},
		{"cancelled to pending", StatusCancelled, StatusPending, ActorCustomer},
		{"cancelled to completed", StatusCancelled, StatusCompleted, ActorBusiness},
		{"self transition", StatusPending, StatusPending, ActorBusiness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Transition(tt.from, tt.to, tt.actor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))

			var trErr *TransitionError
			require.True(t, errors.As(err, &trErr))
			assert.Equal(t, tt.from, trErr.From)
			assert.Equal(t, tt.to, trErr.To)
			assert.Equal(t, tt.actor, trErr.Actor)
		})
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	all := []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
	actors := []Actor{ActorCustomer, ActorBusiness}

	for _, terminal := range TerminalStatuses {
		for _, to := range all {
			for _, actor := range actors {
				err := Transition(terminal, to, actor)
				assert.Error(t, err, "transition %s -> %s by %s must fail", terminal, to, actor)
			}
		}
	}
}

func TestAppointmentHelpers(t *testing.T) {
	a := &Appointment{Status: StatusPending}
	assert.True(t, a.OccupiesSlot())
	assert.True(t, a.CanBeCancelled())
	assert.False(t, a.IsTerminal())

	a.Status = StatusConfirmed
	assert.True(t, a.OccupiesSlot())

	a.Status = StatusCompleted
	assert.False(t, a.OccupiesSlot())
	assert.False(t, a.CanBeCancelled())
	assert.True(t, a.IsTerminal())

	a.Status = StatusCancelled
	assert.False(t, a.OccupiesSlot())
	assert.True(t, a.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got)

	_, err = ParseStatus("in_progress")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}
