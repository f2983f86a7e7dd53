package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Factory builds the controller for a new session
type Factory func(sessionID string) *Controller

type session struct {
	controller *Controller
	lastSeen   time.Time
}

// Store keeps one Controller per browser session, in memory only
type Store struct {
	factory Factory
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewStore creates an empty session store
func NewStore(factory Factory) *Store {
	return &Store{
		factory:  factory,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the controller of an existing session and marks it as used
func (s *Store) Get(id string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.controller, true
}

// Create starts a new session and returns its id
func (s *Store) Create() (string, *Controller) {
	id := uuid.New().String()
	ctrl := s.factory(id)

	s.mu.Lock()
	s.sessions[id] = &session{controller: ctrl, lastSeen: s.now()}
	s.mu.Unlock()

	return id, ctrl
}

// GetOrCreate returns the session for id, creating a fresh one (with a new
// id) when id is empty or unknown. created reports which happened.
func (s *Store) GetOrCreate(id string) (string, *Controller, bool) {
	if id != "" {
		if ctrl, ok := s.Get(id); ok {
			return id, ctrl, false
		}
	}
	newID, ctrl := s.Create()
	return newID, ctrl, true
}

// Delete drops a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than ttl. Sessions with an
// outstanding operation are kept. It returns the number removed.
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) && !sess.controller.Busy() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
