package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// Conn is the push side of one live session.
type Conn interface {
	// Push queues an event for delivery. It must never block; a false
	// return means the frame was dropped.
	Push(event string, data any) bool
}

// Registry tracks which users currently hold live sessions. A user may be
// registered through several sessions at once and an event addressed to the
// user reaches all of them.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[Conn]struct{}
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]map[Conn]struct{})}
}

func (r *Registry) Register(userID uuid.UUID, c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sessions[userID]
	if !ok {
		set = make(map[Conn]struct{})
		r.sessions[userID] = set
	}
	if _, exists := set[c]; !exists {
		set[c] = struct{}{}
		connectionsGauge.Inc()
	}
}

// Unregister removes a single session. Other sessions of the same user
// stay registered.
func (r *Registry) Unregister(userID uuid.UUID, c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sessions[userID]
	if !ok {
		return
	}
	if _, exists := set[c]; !exists {
		return
	}
	delete(set, c)
	connectionsGauge.Dec()
	if len(set) == 0 {
		delete(r.sessions, userID)
	}
}

// Sessions returns a snapshot of the user's live sessions.
func (r *Registry) Sessions(userID uuid.UUID) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.sessions[userID]
	if len(set) == 0 {
		return nil
	}
	out := make([]Conn, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

func (r *Registry) Online(userID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions[userID]) > 0
}

// Len reports the total number of registered sessions across all users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, set := range r.sessions {
		n += len(set)
	}
	return n
}
