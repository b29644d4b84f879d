package fsm

import "github.com/enetx/g"

// StateMachine is the dispatch contract shared by Machine and SyncMachine.
type StateMachine[S, E comparable, C any] interface {
	Send(E) (S, error)
	Current() S
	Context() *C
	Done() bool
	Name() string
	History() g.Slice[S]
	States() g.Slice[S]
	Events() g.Slice[E]
}
