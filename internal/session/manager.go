package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"equipviz/internal/config"
	"equipviz/ports"
)

// CookieName identifies the browser session.
const CookieName = "equipviz_session"

// Manager owns all live sessions, keyed by their cookie ID. Expired sessions
// are swept in the background; sweeping a session drops its credentials and
// cached state with it.
type Manager struct {
	backend       ports.Backend
	ttl           time.Duration
	sweepInterval time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager and starts its background sweeper.
func NewManager(backend ports.Backend, cfg config.SessionConfig) *Manager {
	m := &Manager{
		backend:       backend,
		ttl:           cfg.TTL,
		sweepInterval: cfg.SweepInterval,
		sessions:      make(map[string]*Session),
	}
	go m.sweepLoop()
	return m
}

// Lookup returns the session for an ID, refreshing its idle timer.
func (m *Manager) Lookup(id string) (*Session, bool) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		sess.touch()
	}
	return sess, ok
}

// Create registers a fresh session with a new UUID.
func (m *Manager) Create() *Session {
	sess := newSession(uuid.NewString(), m.backend)
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Drop removes a session entirely.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sweepLoop() {
	for {
		time.Sleep(m.sweepInterval)
		m.sweep()
	}
}

func (m *Manager) sweep() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, sess := range m.sessions {
		if sess.expired(m.ttl, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[SessionManager] Swept %d expired sessions, %d remaining", removed, len(m.sessions))
	}
}
