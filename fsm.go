// Package fsm provides a generic finite state machine engine with support
// for guards, actions, and transition hooks, parameterized over the caller's
// own state, event, and context types. It is built with types and utilities
// from the github.com/enetx/g library.
//
// A machine is declared once through a Builder and then driven by feeding it
// events, synchronously, one at a time:
//
//	m, err := fsm.New[string, string, int]().
//		WithContext(0).
//		OnNext(fsm.SelfTransition[string, string, int]("active", "increment").
//			Action(func(cx *fsm.Context[string, string, int]) error {
//				*cx.Data++
//				return nil
//			})).
//		Start("active")
//
// Dispatch is atomic from the caller's point of view: a failed Send leaves
// the current state untouched, and every failure kind is distinguishable
// with errors.Is and errors.As.
package fsm

import (
	"fmt"
	"log/slog"

	"github.com/enetx/g"
)

// Machine is a live state machine: the current state, the caller's context
// value, and the frozen transition table. Created by Builder.Start.
//
// A Machine is not safe for concurrent use; callers that need it from
// multiple goroutines should wrap it with Sync.
type Machine[S, E comparable, C any] struct {
	name    string
	table   g.Map[node[S, E], *Transition[S, E, C]]
	initial S
	current S
	context C
	done    bool
	history g.Slice[S]
	hooks   g.Slice[Hook[S, E, C]]
	logger  *slog.Logger
}

// Interface compliance check.
var _ StateMachine[int, int, int] = (*Machine[int, int, int])(nil)

// Send dispatches one event against the transition table.
//
// On success it returns the state the machine was in before the transition.
// On failure it returns the current state together with ErrDone,
// *ErrInvalidTransition, *ErrGuardRejected, or *ErrCallback; none of these
// are fatal, and the machine remains usable afterwards. Every failure leaves
// the current state untouched, except an OnTransition hook error, which is
// reported after the transition has already committed.
func (m *Machine[S, E, C]) Send(event E) (S, error) {
	if m.done {
		dispatchFailuresTotal.WithLabelValues(m.name, reasonDone).Inc()
		return m.current, ErrDone
	}

	found := m.table.Get(node[S, E]{from: m.current, event: event})
	if found.IsNone() {
		m.log("no transition defined", "event", event, "state", m.current)
		dispatchFailuresTotal.WithLabelValues(m.name, reasonInvalidTransition).Inc()

		return m.current, &ErrInvalidTransition[S, E]{From: m.current, Event: event}
	}

	t := found.Some()
	cx := &Context[S, E, C]{From: m.current, To: t.to, Event: event, Data: &m.context}

	if t.guard != nil && !t.guard(cx) {
		m.log("guard rejected transition", "event", event, "from", t.from, "to", t.to)
		dispatchFailuresTotal.WithLabelValues(m.name, reasonGuardRejected).Inc()

		return m.current, &ErrGuardRejected[S, E]{From: m.current, Event: event}
	}

	if t.action != nil {
		if err := m.runCallback("Action", event, cx, t.action); err != nil {
			m.log("action failed", "event", event, "state", m.current, "error", err)
			dispatchFailuresTotal.WithLabelValues(m.name, reasonActionError).Inc()

			return m.current, err
		}
	}

	prev := m.current
	if !t.self {
		m.current = t.to
	}

	if t.final {
		m.done = true
	}

	m.history.Push(m.current)

	m.log("transition", "event", event, "from", prev, "to", m.current)
	transitionsTotal.WithLabelValues(m.name, metricLabel(prev), metricLabel(m.current), metricLabel(event)).Inc()

	for hook := range m.hooks.Iter() {
		if err := m.runCallback("OnTransition", event, cx, hook); err != nil {
			dispatchFailuresTotal.WithLabelValues(m.name, reasonHookError).Inc()
			return m.current, err
		}
	}

	return prev, nil
}

// runCallback executes a user callback, converting errors and recovered
// panics into *ErrCallback.
func (m *Machine[S, E, C]) runCallback(hook string, event E, cx *Context[S, E, C], fn func(*Context[S, E, C]) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback[S, E]{Hook: hook, From: cx.From, Event: event, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if cbErr := fn(cx); cbErr != nil {
		err = &ErrCallback[S, E]{Hook: hook, From: cx.From, Event: event, Err: cbErr}
	}

	return err
}

// Current returns the machine's current state.
func (m *Machine[S, E, C]) Current() S {
	return m.current
}

// Context returns a pointer to the machine's context value, for reading and
// for caller-driven mutation outside dispatch.
func (m *Machine[S, E, C]) Context() *C {
	return &m.context
}

// Done reports whether a final transition has fired.
func (m *Machine[S, E, C]) Done() bool {
	return m.done
}

// Name returns the machine name used for log and metric attribution.
func (m *Machine[S, E, C]) Name() string {
	return m.name
}

// History returns a copy of the states visited so far, starting with the
// initial state. Failed dispatches leave no trace.
func (m *Machine[S, E, C]) History() g.Slice[S] {
	return m.history.Clone()
}

// States returns a slice of all unique states named by the transition table,
// plus the initial state.
func (m *Machine[S, E, C]) States() g.Slice[S] {
	states := g.NewSet[S]()
	states.Insert(m.initial)

	for key, t := range m.table.Iter() {
		states.Insert(key.from)
		states.Insert(t.to)
	}

	return states.ToSlice()
}

// Events returns a slice of all unique events named by the transition table.
func (m *Machine[S, E, C]) Events() g.Slice[E] {
	events := g.NewSet[E]()

	for key := range m.table.Iter() {
		events.Insert(key.event)
	}

	return events.ToSlice()
}

func (m *Machine[S, E, C]) log(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, append([]any{"machine", m.name}, args...)...)
	}
}
