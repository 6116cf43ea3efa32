package hub

import (
	"encoding/json"
	"sync"
)

// Event represents a storefront notification to be sent to clients
// (item added to cart, game wishlisted, and so on).
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types broadcast by the cart and wishlist handlers.
const (
	EventCartItemAdded   = "cart.item_added"
	EventCartItemUpdated = "cart.item_updated"
	EventCartItemRemoved = "cart.item_removed"
	EventCartCleared     = "cart.cleared"
	EventWishlistAdded   = "wishlist.added"
	EventWishlistRemoved = "wishlist.removed"
	EventWishlistCleared = "wishlist.cleared"
)

// Client represents a single client connection (one open notification stream).
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Hub fans events out to the connections of each session.
type Hub struct {
	sessions map[string]map[Client]bool
	mu       sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a new client connection for a session.
func (h *Hub) Subscribe(sessionID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[sessionID]; !ok {
		h.sessions[sessionID] = make(map[Client]bool)
	}
	h.sessions[sessionID][client] = true
}

// Unsubscribe removes a client connection from a session.
func (h *Hub) Unsubscribe(sessionID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.sessions[sessionID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.sessions, sessionID)
			}
		}
	}
}

// Broadcast sends an event to every connection of one session.
func (h *Hub) Broadcast(sessionID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.sessions[sessionID]; ok {
		messageBytes, err := json.Marshal(event)
		if err != nil {
			return
		}

		for client := range clients {
			// Use a non-blocking send to prevent a slow client from blocking the hub.
			select {
			case client <- messageBytes:
			default:
				// Client channel is full, maybe they are disconnected or slow.
				// The unsubscribe logic will handle cleaning this up eventually.
			}
		}
	}
}
