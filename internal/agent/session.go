package agent

import (
	"sync"

	"github.com/google/uuid"

	"studybuddy_backend/internal/llm"
)

// maxSessionHistory caps the stored conversation per session. When the
// cap is hit the oldest messages are dropped in pairs so the history
// never starts with a dangling tool result.
const maxSessionHistory = 40

// Session is one conversation with the agent.
type Session struct {
	ID      string
	History []llm.Message
}

// SessionService keeps conversations in memory, keyed by id.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]*Session)}
}

// Resolve returns the session for id, creating a fresh one when id is
// empty or unknown. The second return reports whether a new session was
// created.
func (s *SessionService) Resolve(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			return sess, false
		}
	}
	sess := &Session{ID: uuid.NewString()}
	s.sessions[sess.ID] = sess
	return sess, true
}

// Append records messages on the session and trims old history.
func (s *SessionService) Append(sess *Session, msgs ...llm.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.History = append(sess.History, msgs...)
	for len(sess.History) > maxSessionHistory {
		drop := 2
		if drop > len(sess.History) {
			drop = len(sess.History)
		}
		sess.History = sess.History[drop:]
	}
}

// HistoryCopy returns a snapshot of the session history.
func (s *SessionService) HistoryCopy(sess *Session) []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.Message, len(sess.History))
	copy(out, sess.History)
	return out
}

// Count reports how many sessions are live.
func (s *SessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
