package state

import "sync"

// Store is the single mutual-exclusion boundary around the shared snapshot.
// Readers get an independent copy; writers publish a whole new snapshot.
// Update runs read-modify-publish atomically, so a tick never interleaves
// with a transaction.
type Store struct {
	mu sync.RWMutex
	s  GameState
}

func NewStore(initial GameState) *Store {
	return &Store{s: initial}
}

// Get returns an independent copy of the current snapshot.
func (st *Store) Get() GameState {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.Clone()
}

// Replace publishes a new snapshot.
func (st *Store) Replace(s GameState) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s = s
}

// Update atomically derives and publishes the next snapshot. The function
// receives a private copy; returning it unchanged is a no-op.
func (st *Store) Update(f func(GameState) GameState) GameState {
	st.mu.Lock()
	defer st.mu.Unlock()
	next := f(st.s.Clone())
	st.s = next
	return next.Clone()
}

// Transact is Update with validation: if f returns an error nothing is
// published and the unchanged snapshot is returned alongside the error.
func (st *Store) Transact(f func(*GameState) error) (GameState, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next := st.s.Clone()
	if err := f(&next); err != nil {
		return st.s.Clone(), err
	}
	st.s = next
	return next.Clone(), nil
}
