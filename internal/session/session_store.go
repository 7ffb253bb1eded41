// Package session owns per-session conversational state: the active flow
// and the in-progress leave draft. One State per session, never shared.
package session

import (
	"context"
	"sync"

	"hr-assistant/internal/intent"
	"hr-assistant/internal/leave"
)

// State is everything the orchestrator remembers between turns. Only the
// leave flow is stateful; policy and feedback never become active.
type State struct {
	ActiveFlow intent.Flow `json:"active_flow"`
	Draft      leave.Draft `json:"draft"`
}

//go:generate mockgen -source=session_store.go -destination=mock/session_store_mock.go -package=mock

// Store loads and saves session state by session id. Load returns a zero
// State for sessions it has never seen.
type Store interface {
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, state State) error
	Clear(ctx context.Context, sessionID string) error
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]State
}

// NewMemoryStore backs single-process surfaces such as the CLI.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]State)}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionID], nil
}

func (s *memoryStore) Save(_ context.Context, sessionID string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = state
	return nil
}

func (s *memoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
