package wishlist

import (
	"context"
	"sync"

	"novacore/backend/internal/localstore"
)

// Manager hands out one Wishlist per session, loading each from the store on
// first touch and caching it for the rest of the process lifetime.
type Manager struct {
	mu    sync.Mutex
	store localstore.Store
	lists map[string]*Wishlist
}

// NewManager creates a manager over the given store.
func NewManager(store localstore.Store) *Manager {
	return &Manager{store: store, lists: make(map[string]*Wishlist)}
}

// ForSession returns the session's wishlist, loading it if needed.
func (m *Manager) ForSession(ctx context.Context, sessionID string) *Wishlist {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.lists[sessionID]; ok {
		return w
	}
	w := Load(ctx, m.store, sessionID)
	m.lists[sessionID] = w
	return w
}
