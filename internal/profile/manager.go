package profile

import (
	"sync"
	"time"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/domain"
)

// Manager hands out one Editor per session. The first access for a session
// creates the editor around the default profile, which is the equivalent of
// mounting the dashboard. Nothing is persisted; editors live for the life
// of the process.
type Manager struct {
	mu          sync.Mutex
	editors     map[string]*Editor
	verifyDelay time.Duration
}

// NewManager creates an empty editor registry.
func NewManager(verifyDelay time.Duration) *Manager {
	return &Manager{
		editors:     make(map[string]*Editor),
		verifyDelay: verifyDelay,
	}
}

// Get returns the editor for a session, creating it on first use.
func (m *Manager) Get(sessionID string) *Editor {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.editors[sessionID]
	if !ok {
		e = NewEditor(domain.DefaultProfile(), m.verifyDelay)
		m.editors[sessionID] = e
	}
	return e
}
