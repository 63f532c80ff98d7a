package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName identifies the browser session carrying the cart.
const CookieName = "panel_session"

// Manager owns all live sessions. Idle sessions are dropped by a janitor
// goroutine after the configured TTL.
type Manager struct {
	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		ttl:      ttl,
		stopChan: make(chan struct{}),
		sessions: make(map[string]*Session),
	}
	go m.janitor()
	return m
}

// Get returns the session for an id, refreshing its idle timer.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		s.touch()
	}
	return s, ok
}

// Create registers a new session under a random id.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// GetOrCreate resolves an existing session or starts a new one when the
// id is unknown (expired session, fresh browser).
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s
		}
	}
	return m.Create()
}

func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep(time.Now())
		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.idleSince(now) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
