package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel every TransitionError unwraps to,
// so callers can keep using errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError describes a rejected status change: the current state,
// the requested state and the actor that asked for it.
type TransitionError struct {
	From  AppointmentStatus
	To    AppointmentStatus
	Actor Actor
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s by %s", e.From, e.To, e.Actor)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// transitionKey pair (from, to)
type transitionKey struct {
	from AppointmentStatus
	to   AppointmentStatus
}

// transitionTable lists every legal transition and the actors allowed to
// trigger it. Both completed and cancelled are terminal: they appear only
// on the left side of no entry.
var transitionTable = map[transitionKey][]Actor{
	{StatusPending, StatusConfirmed}:   {ActorBusiness},
	{StatusPending, StatusCancelled}:   {ActorBusiness, ActorCustomer},
	{StatusConfirmed, StatusCompleted}: {ActorBusiness},
	{StatusConfirmed, StatusCancelled}: {ActorBusiness, ActorCustomer},
}

// Transition checks the (from, to, actor) triple against the transition
// table. It is a pure function: on success the caller writes the new
// status, on failure it returns a *TransitionError and the record stays
// untouched.
func Transition(from, to AppointmentStatus, actor Actor) error {
	allowed, ok := transitionTable[transitionKey{from: from, to: to}]
	if !ok {
		return &TransitionError{From: from, To: to, Actor: actor}
	}
	for _, a := range allowed {
		if a == actor {
			return nil
		}
	}
	return &TransitionError{From: from, To: to, Actor: actor}
}

// ParseStatus converts a raw string into an AppointmentStatus,
// rejecting anything outside the closed enum
func ParseStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// ParseActor converts a raw string into an Actor
func ParseActor(s string) (Actor, error) {
	switch Actor(s) {
	case ActorCustomer, ActorBusiness:
		return Actor(s), nil
	default:
		return "", fmt.Errorf("unknown actor %q", s)
	}
}

// ParsePaymentMethod converts a raw string into a PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentInApp:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}
