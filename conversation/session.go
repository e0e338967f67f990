package conversation

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sidesh-hub/medinfo-india/medicine"
)

// ErrTurnInFlight means a turn arrived while the previous one was still
// being resolved. The session processes one turn at a time.
var ErrTurnInFlight = errors.New("a turn is already in flight for this session")

// TurnState is the per-session turn lifecycle.
type TurnState int

const (
	// TurnIdle means the session is ready for the next user message.
	TurnIdle TurnState = iota
	// TurnAwaitingResponse means a turn is being resolved. Transcript
	// snapshots taken in this state carry a derived typing placeholder.
	TurnAwaitingResponse
)

// Session owns one conversation transcript. The transcript is append-only
// and insertion order is display order; messages are never mutated after
// being appended. All access goes through the session's lock since HTTP
// handlers may touch the same session from different goroutines.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	state      TurnState
	messages   []medicine.Message
	lastActive time.Time
}

// NewSession creates a session seeded with the welcome message.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		messages: []medicine.Message{
			medicine.NewMessage(medicine.RoleAssistant, welcomeText),
		},
		lastActive: now,
	}
}

// beginTurn appends the user's message and moves to AwaitingResponse.
// It rejects the turn when one is already in flight.
func (s *Session) beginTurn(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != TurnIdle {
		return ErrTurnInFlight
	}

	s.messages = append(s.messages, medicine.NewMessage(medicine.RoleUser, content))
	s.state = TurnAwaitingResponse
	s.lastActive = time.Now()
	return nil
}

// completeTurn appends the turn's assistant messages and returns the
// session to idle. The turn invariant is that every terminal state yields
// at least one assistant message, so an empty reply set is backfilled
// rather than leaving the transcript ending on a user entry.
func (s *Session) completeTurn(replies []medicine.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(replies) == 0 {
		replies = []medicine.Message{
			medicine.NewMessage(medicine.RoleAssistant, retryLaterText),
		}
	}

	s.messages = append(s.messages, replies...)
	s.state = TurnIdle
	s.lastActive = time.Now()
}

// State returns the current turn state.
func (s *Session) State() TurnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastActive returns the time of the last transcript activity.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Snapshot returns a copy of the transcript. While a turn is in flight the
// snapshot ends with a derived typing placeholder; the placeholder is never
// stored, so it can neither duplicate nor strand.
func (s *Session) Snapshot() []medicine.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]medicine.Message, len(s.messages), len(s.messages)+1)
	copy(out, s.messages)

	if s.state == TurnAwaitingResponse {
		out = append(out, medicine.Message{
			ID:        s.ID + ":typing",
			Role:      medicine.RoleAssistant,
			Timestamp: time.Now(),
			IsPending: true,
		})
	}

	return out
}

// Len returns the number of stored transcript entries (the derived typing
// placeholder does not count).
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
