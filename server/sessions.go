package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	planarfacefinder "github.com/farkasseb/PlanarFaceFinder"
)

// ============================================================
// Session Store
// ============================================================

var ErrSessionLimit = errors.New("session limit reached")

// A session is one drawing. The finder is not safe for concurrent use, so every
// access goes through the session's lock.
type Session struct {
	mu     sync.Mutex
	finder *planarfacefinder.Finder
}

// Do runs fn with exclusive access to the session's finder.
func (s *Session) Do(fn func(f *planarfacefinder.Finder) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.finder)
}

func (s *Session) Scene() planarfacefinder.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finder.Scene()
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session // id -> session
	limit    int
}

// NewSessionStore creates a store holding at most limit sessions. A limit of
// zero or less means no limit.
func NewSessionStore(limit int) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		limit:    limit,
	}
}

func (m *SessionStore) Create() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.limit > 0 && len(m.sessions) >= m.limit {
		return "", ErrSessionLimit
	}
	id := uuid.NewString()
	m.sessions[id] = &Session{finder: planarfacefinder.New()}
	return id, nil
}

func (m *SessionStore) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	return session, ok
}

func (m *SessionStore) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

func (m *SessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
