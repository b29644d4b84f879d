package fsm

type (
	// Guard determines whether a transition is allowed to fire. It receives a
	// read view of the dispatch; guards must not mutate cx.Data.
	Guard[S, E comparable, C any] func(cx *Context[S, E, C]) bool

	// Action is executed when a transition fires, with mutable access to the
	// machine's context through cx.Data. An action must not try to move the
	// machine itself; the destination is fixed by the transition. If an action
	// fails partway through, the mutations it already made to cx.Data stand —
	// actions are responsible for leaving the context consistent.
	Action[S, E comparable, C any] func(cx *Context[S, E, C]) error

	// Hook is a global callback invoked after every committed transition.
	// A hook error is reported to the caller of Send, but the transition it
	// observed has already been committed and is not undone.
	Hook[S, E comparable, C any] func(cx *Context[S, E, C]) error
)

// Context is the view passed to guards, actions, and hooks for a single
// dispatch. It is only valid for the duration of the call and must not be
// retained.
type Context[S, E comparable, C any] struct {
	// From is the state the transition starts in.
	From S

	// To is the state the transition ends in. Equal to From for
	// self-transitions.
	To S

	// Event is the event that triggered the transition.
	Event E

	// Data points at the machine's context value.
	Data *C
}
