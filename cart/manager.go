package cart

import (
	"context"
	"sync"
)

// Manager hands out one Cart per session id so every request from a
// session hits the same serialized container. Carts are loaded lazily
// on first access and cached for the life of the process; the cache
// assumes a single API instance.
type Manager struct {
	store Store

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, carts: make(map[string]*Cart)}
}

// Get returns the cart for sessionID, loading it from the store on
// first access. A failed load is returned to the caller and the cart is
// not cached, so the next request retries.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Cart, error) {
	m.mu.Lock()
	if c, ok := m.carts[sessionID]; ok {
		m.mu.Unlock()
		return c, nil
	}
	m.mu.Unlock()

	c := New(m.store, sessionID)
	if err := c.Load(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have loaded the same session concurrently;
	// keep the first one so there is a single container per session.
	if existing, ok := m.carts[sessionID]; ok {
		return existing, nil
	}
	m.carts[sessionID] = c
	return c, nil
}
