package fsm

import (
	"sync"

	"github.com/enetx/g"
)

// SyncMachine is a thread-safe wrapper around a Machine. It serializes all
// state-mutating and state-reading operations with a sync.RWMutex, making
// one machine instance safe for use across multiple goroutines. Events are
// still processed one at a time, in lock-acquisition order.
type SyncMachine[S, E comparable, C any] struct {
	fsm *Machine[S, E, C]
	mu  sync.RWMutex
}

// Interface compliance check.
var _ StateMachine[int, int, int] = (*SyncMachine[int, int, int])(nil)

// Sync wraps the machine in a SyncMachine. The caller must not keep using
// the unwrapped machine afterwards.
func (m *Machine[S, E, C]) Sync() *SyncMachine[S, E, C] {
	return &SyncMachine[S, E, C]{fsm: m}
}

// Send is the thread-safe version of Machine.Send.
func (sm *SyncMachine[S, E, C]) Send(event E) (S, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.fsm.Send(event)
}

// Current is the thread-safe version of Machine.Current.
func (sm *SyncMachine[S, E, C]) Current() S {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.fsm.Current()
}

// Context is the thread-safe version of Machine.Context.
// WARNING: it hands out a pointer into the machine; callers that mutate the
// context through it while other goroutines dispatch events must provide
// their own synchronization over the context value.
func (sm *SyncMachine[S, E, C]) Context() *C {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.fsm.Context()
}

// Done is the thread-safe version of Machine.Done.
func (sm *SyncMachine[S, E, C]) Done() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.fsm.Done()
}

// Name is the thread-safe version of Machine.Name.
func (sm *SyncMachine[S, E, C]) Name() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.fsm.Name()
}

// History is the thread-safe version of Machine.History.
func (sm *SyncMachine[S, E, C]) History() g.Slice[S] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.fsm.History()
}

// States is the thread-safe version of Machine.States.
func (sm *SyncMachine[S, E, C]) States() g.Slice[S] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.fsm.States()
}

// Events is the thread-safe version of Machine.Events.
func (sm *SyncMachine[S, E, C]) Events() g.Slice[E] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.fsm.Events()
}
