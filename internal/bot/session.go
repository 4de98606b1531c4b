package bot

import (
	"sync"

	"blackjack/internal/game"
)

// session is one chat's in-flight round. The round goroutine blocks
// on the decisions channel until a button callback feeds it.
type session struct {
	decisions chan game.Decision
}

func newSession() *session {
	return &session{
		decisions: make(chan game.Decision, 1),
	}
}

// NextDecision makes the session the round's decision source.
func (s *session) NextDecision() game.Decision {
	return <-s.decisions
}

// offer hands a callback decision to the round without blocking the
// update loop; double-taps while the round is busy are dropped.
func (s *session) offer(d game.Decision) bool {
	select {
	case s.decisions <- d:
		return true
	default:
		return false
	}
}

// sessionManager tracks the active round per chat.
type sessionManager struct {
	sessions map[int64]*session
	mu       sync.RWMutex
}

func newSessionManager() *sessionManager {
	return &sessionManager{
		sessions: make(map[int64]*session),
	}
}

func (m *sessionManager) Get(chatID int64) *session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[chatID]
}

// Start registers a new session unless one is already running.
func (m *sessionManager) Start(chatID int64) (*session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[chatID]; exists {
		return nil, false
	}
	s := newSession()
	m.sessions[chatID] = s
	return s, true
}

func (m *sessionManager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}
