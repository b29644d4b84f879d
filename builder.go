package fsm

import (
	"fmt"
	"log/slog"

	"github.com/enetx/g"
	"github.com/google/uuid"
)

// Builder accumulates transitions and produces a Machine. The table it builds
// is frozen at Start; a single Builder may start any number of independent
// machines from the same table.
type Builder[S, E comparable, C any] struct {
	name       string
	table      g.Map[node[S, E], *Transition[S, E, C]]
	hooks      g.Slice[Hook[S, E, C]]
	context    C
	hasContext bool
	logger     *slog.Logger
}

// New returns an empty Builder for machines over the given state, event, and
// context types.
func New[S, E comparable, C any]() *Builder[S, E, C] {
	return &Builder[S, E, C]{
		table: g.NewMap[node[S, E], *Transition[S, E, C]](),
	}
}

// OnNext registers a completed transition. At most one transition may exist
// per (from-state, event) pair; registering a second one is a static
// configuration bug and panics immediately, in the manner of
// http.ServeMux.Handle on a duplicate pattern.
func (b *Builder[S, E, C]) OnNext(t *Transition[S, E, C]) *Builder[S, E, C] {
	if t == nil {
		panic("fsm: OnNext called with a nil transition")
	}

	key := node[S, E]{from: t.from, event: t.event}
	if b.table.Contains(key) {
		panic(fmt.Sprintf("fsm: transition already registered for state %v on event %v", t.from, t.event))
	}

	b.table.Set(key, t)

	return b
}

// WithContext supplies the machine's initial context value. Required before
// Start.
func (b *Builder[S, E, C]) WithContext(context C) *Builder[S, E, C] {
	b.context = context
	b.hasContext = true

	return b
}

// OnTransition registers a global hook called after every committed
// transition, in registration order.
func (b *Builder[S, E, C]) OnTransition(hook Hook[S, E, C]) *Builder[S, E, C] {
	b.hooks.Push(hook)
	return b
}

// WithLogger attaches a structured logger. Dispatch outcomes are logged at
// debug level. Without a logger the machine is silent.
func (b *Builder[S, E, C]) WithLogger(logger *slog.Logger) *Builder[S, E, C] {
	b.logger = logger
	return b
}

// WithName sets the machine name used for log and metric attribution. When
// unset, Start assigns a short random name.
func (b *Builder[S, E, C]) WithName(name string) *Builder[S, E, C] {
	b.name = name
	return b
}

// Start freezes the accumulated table and returns a ready Machine in the
// given initial state. It fails with ErrNoContext if WithContext was never
// called. An initial state with no outgoing transitions is allowed (a
// terminal machine is legitimate) but logged as a warning when a logger is
// configured.
func (b *Builder[S, E, C]) Start(initial S) (*Machine[S, E, C], error) {
	if !b.hasContext {
		return nil, ErrNoContext
	}

	name := b.name
	if name == "" {
		name = uuid.NewString()[:8]
	}

	table := g.NewMap[node[S, E], *Transition[S, E, C]]()
	outgoing := false

	for key, t := range b.table.Iter() {
		table.Set(key, t)

		if key.from == initial {
			outgoing = true
		}
	}

	if !outgoing && b.logger != nil {
		b.logger.Warn("initial state has no outgoing transitions", "machine", name, "state", initial)
	}

	return &Machine[S, E, C]{
		name:    name,
		table:   table,
		initial: initial,
		current: initial,
		context: b.context,
		history: g.Slice[S]{initial},
		hooks:   b.hooks.Clone(),
		logger:  b.logger,
	}, nil
}
