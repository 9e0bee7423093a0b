package service

import (
	"sync"
	"time"

	"github.com/takwin-app/landing-api/internal/models"
)

// SessionStore abstracts session lookup so handlers never touch the map
// directly. The default implementation is in-memory; a restart drops
// every session and administrators re-login.
type SessionStore interface {
	// Get retrieves a session by token. Returns false if the session
	// does not exist or has expired.
	Get(token string) (models.Session, bool)
	// Put creates or replaces the session bound to token.
	Put(token string, session models.Session)
	// Delete removes a session by token. Unknown tokens are ignored.
	Delete(token string)
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

// NewMemorySessionStore returns the process-local session store.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (s *memorySessionStore) Get(token string) (models.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return models.Session{}, false
	}
	if session.Expired(s.now()) {
		// Expired entries are dropped lazily on read.
		s.Delete(token)
		return models.Session{}, false
	}
	return session, true
}

func (s *memorySessionStore) Put(token string, session models.Session) {
	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()
}

func (s *memorySessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
