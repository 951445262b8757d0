package state

import (
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/community-engage/internal/observability"
)

// Listener observes every state change with the snapshot that produced it.
type Listener func(*State)

// Store owns the application state for one session. All mutation funnels
// through Dispatch, which is the single serialized entry point; the reducer
// itself stays pure. Stores are constructed explicitly and injected, never
// held in a package-level singleton.
type Store struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex
	current   *State
	listeners []Listener
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// NewStore builds a store over the initial empty state.
func NewStore(logger *zap.Logger, metrics *observability.Metrics) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		current: New(),
		logger:  logger,
		metrics: metrics,
	}
}

// Dispatch reduces one action into the store and returns the resulting state.
// Listeners fire only when the state actually changed, in commit order: the
// notify lock is taken before the state lock is released, so overlapping
// dispatches cannot deliver snapshots out of order.
func (st *Store) Dispatch(action Action) *State {
	st.mu.Lock()
	prev := st.current
	next := Reduce(prev, action)
	st.current = next
	listeners := st.listeners
	changed := next != prev
	if changed {
		st.notifyMu.Lock()
	}
	st.mu.Unlock()

	name := ActionName(action)
	st.metrics.RecordAction(name, changed)
	if !changed {
		st.logger.Debug("action ignored", zap.String("action", name))
		return next
	}
	st.logger.Debug("action applied", zap.String("action", name))
	for _, listener := range listeners {
		listener(next)
	}
	st.notifyMu.Unlock()
	return next
}

// State returns the current snapshot. Snapshots are immutable by discipline
// and safe to read without holding the store.
func (st *Store) State() *State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.current
}

// Subscribe registers a change listener. Listeners receive snapshots in
// commit order and run while the notify lock is held, so a listener must not
// dispatch back into the store.
func (st *Store) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.listeners = append(st.listeners, listener)
}

// Hydrate replaces the state with an externally-loaded snapshot.
func (st *Store) Hydrate(loaded *State) *State {
	return st.Dispatch(SyncWithStorage{State: loaded})
}
