package session

import (
	"slices"
	"sync"
)

// Registry tracks the sessions of a multi-client host such as the SSH server.
// Each session still runs its own engine; the registry only counts them.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Register adds a session under id, replacing any previous one.
func (r *Registry) Register(id string, s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = s
}

// Unregister removes the session under id.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Players returns the sorted player labels of all registered sessions.
func (r *Registry) Players() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	players := make([]string, 0, len(r.sessions))
	for _, s := range r.sessions {
		players = append(players, s.Player())
	}
	slices.Sort(players)
	return players
}
