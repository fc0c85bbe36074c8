package cart

import "sync"

// Manager owns one cart session per user. Sessions are created lazily on
// first use and dropped explicitly when the logging flow ends, so no cart
// outlives its owner.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Session returns the user's cart, creating it on first access.
func (m *Manager) Session(userID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		c = New()
		m.carts[userID] = c
	}
	return c
}

// Drop discards the user's session entirely.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	delete(m.carts, userID)
	m.mu.Unlock()
}
