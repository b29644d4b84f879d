package fsm

import (
	"errors"
	"fmt"
)

// ErrDone is returned by Send after a final transition has fired. The machine
// no longer accepts events.
var ErrDone = errors.New("fsm: state machine is done")

// ErrNoContext is returned by Start when no context value was supplied.
// Call WithContext before Start.
var ErrNoContext = errors.New("fsm: no context supplied")

// ErrInvalidTransition is returned when no transition is registered for the
// given event from the current state. The machine's state and context are
// left untouched.
type ErrInvalidTransition[S, E comparable] struct {
	From  S
	Event E
}

func (e *ErrInvalidTransition[S, E]) Error() string {
	return fmt.Sprintf("fsm: no transition for event %v from state %v", e.Event, e.From)
}

// ErrGuardRejected is returned when a transition exists for the given event
// but its guard evaluated false. Distinct from ErrInvalidTransition so
// callers can tell "impossible" from "currently disallowed". The machine's
// state and context are left untouched.
type ErrGuardRejected[S, E comparable] struct {
	From  S
	Event E
}

func (e *ErrGuardRejected[S, E]) Error() string {
	return fmt.Sprintf("fsm: transition for event %v from state %v rejected by guard", e.Event, e.From)
}

// ErrCallback is returned when an action or an OnTransition hook returns an
// error or panics. It wraps the original error, allowing it to be inspected
// with errors.Is and errors.As.
type ErrCallback[S, E comparable] struct {
	// Hook is where the error occurred: "Action" or "OnTransition".
	Hook string
	// From is the state the failed dispatch started in.
	From S
	// Event is the event being dispatched.
	Event E
	// Err is the original error, or the error created after recovering from
	// a panic.
	Err error
}

func (e *ErrCallback[S, E]) Error() string {
	return fmt.Sprintf("fsm: error in %s for event %v from state %v: %v", e.Hook, e.Event, e.From, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package.
func (e *ErrCallback[S, E]) Unwrap() error { return e.Err }
