package fsm

// node is the composite transition-table key: one descriptor per
// (from-state, event) pair.
type node[S, E comparable] struct {
	from  S
	event E
}

// Transition describes a single rule of the table: when the machine is in
// `from` and receives `event`, it moves to `to`, optionally gated by a guard
// and accompanied by an action. A Transition is configured fluently and then
// registered with Builder.OnNext; it must not be modified afterwards.
type Transition[S, E comparable, C any] struct {
	from  S
	to    S
	event E

	// self marks an explicit stay-in-state transition, as opposed to an
	// ordinary transition that merely targets its own source.
	self  bool
	final bool

	guard  Guard[S, E, C]
	action Action[S, E, C]
}

// NewTransition constructs a transition from one state to another, triggered
// by the given event.
func NewTransition[S, E comparable, C any](from S, event E, to S) *Transition[S, E, C] {
	return &Transition[S, E, C]{from: from, to: to, event: event}
}

// SelfTransition constructs a transition from a state to itself, triggered by
// the given event. Its action runs on every dispatch, but the current state
// never changes.
func SelfTransition[S, E comparable, C any](state S, event E) *Transition[S, E, C] {
	return &Transition[S, E, C]{from: state, to: state, event: event, self: true}
}

// Guard attaches a predicate that must return true for the transition to
// fire. A rejected dispatch is reported as *ErrGuardRejected.
func (t *Transition[S, E, C]) Guard(g Guard[S, E, C]) *Transition[S, E, C] {
	t.guard = g
	return t
}

// Action attaches a callable executed when the transition fires.
func (t *Transition[S, E, C]) Action(a Action[S, E, C]) *Transition[S, E, C] {
	t.action = a
	return t
}

// Final marks this transition as completing the machine. After it fires, any
// further Send returns ErrDone.
func (t *Transition[S, E, C]) Final() *Transition[S, E, C] {
	t.final = true
	return t
}

// From returns the state this transition starts in.
func (t *Transition[S, E, C]) From() S { return t.from }

// To returns the state this transition ends in.
func (t *Transition[S, E, C]) To() S { return t.to }

// Event returns the event that triggers this transition.
func (t *Transition[S, E, C]) Event() E { return t.event }

// IsSelf reports whether this is an explicit self-transition.
func (t *Transition[S, E, C]) IsSelf() bool { return t.self }
