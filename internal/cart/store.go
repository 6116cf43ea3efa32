package cart

import (
	"sync"

	"novacore/backend/internal/models"
)

// Store keeps one cart per session in memory. All reads hand out copies; the
// only way to change a stored cart is to run a reducer through Update.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLineItem
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string][]models.CartLineItem)}
}

// Get returns a copy of the session's cart. Unknown sessions have an empty cart.
func (s *Store) Get(sessionID string) []models.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.carts[sessionID])
}

// Update applies fn to the session's current cart and stores the result. The
// new cart is returned as a copy.
func (s *Store) Update(sessionID string, fn func([]models.CartLineItem) []models.CartLineItem) []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(clone(s.carts[sessionID]))
	if len(next) == 0 {
		delete(s.carts, sessionID)
	} else {
		s.carts[sessionID] = next
	}
	return clone(next)
}
