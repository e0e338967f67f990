// Package sessions keeps the in-memory conversation sessions and the
// janitor that sweeps idle ones.
package sessions

import (
	"sync"
	"time"

	"github.com/sidesh-hub/medinfo-india/conversation"
)

// Store is an in-memory session registry keyed by session id. Sessions
// that stay idle past the TTL are removed by the janitor.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*conversation.Session
	ttl      time.Duration
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*conversation.Session),
		ttl:      ttl,
	}
}

// Create starts a new session (seeded with the welcome message) and
// registers it.
func (st *Store) Create() *conversation.Session {
	s := conversation.NewSession()

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get returns the session with the given id.
func (st *Store) Get(id string) (*conversation.Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// SweepExpired removes sessions idle past the TTL and returns how many were
// dropped. Sessions with a turn still in flight are kept: their transcript
// is about to change.
func (st *Store) SweepExpired() int {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.State() != conversation.TurnIdle {
			continue
		}
		if s.LastActive().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
