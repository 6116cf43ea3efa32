package wishlist

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"novacore/backend/internal/localstore"
	"novacore/backend/internal/models"
)

// keyPrefix namespaces wishlist values inside the shared local store.
const keyPrefix = "novacore:wishlist:"

// Wishlist is a deduplicated set of entries for one session, persisted in full
// on every mutation. A missing or corrupt persisted value is treated as an
// empty set, never as an error.
type Wishlist struct {
	mu      sync.Mutex
	store   localstore.Store
	key     string
	entries []models.WishlistEntry
}

// Load reads the session's wishlist back from the store.
func Load(ctx context.Context, store localstore.Store, sessionID string) *Wishlist {
	w := &Wishlist{store: store, key: keyPrefix + sessionID}

	value, found, err := store.Load(ctx, w.key)
	if err != nil {
		log.Error().Err(err).Str("key", w.key).Msg("wishlist load failed, starting empty")
		return w
	}
	if !found {
		return w
	}
	if err := json.Unmarshal(value, &w.entries); err != nil {
		log.Warn().Err(err).Str("key", w.key).Msg("wishlist value is corrupt, starting empty")
		w.entries = nil
	}
	return w
}

// Add inserts the entry unless its game is already wishlisted. The entry's
// AddedDate is stamped here. Reports whether the entry was inserted.
func (w *Wishlist) Add(ctx context.Context, entry models.WishlistEntry) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range w.entries {
		if e.GameID == entry.GameID {
			return false
		}
	}
	entry.AddedDate = time.Now()
	w.entries = append(w.entries, entry)
	w.persist(ctx)
	return true
}

// Remove drops the entry for the given game. Reports whether anything changed.
func (w *Wishlist) Remove(ctx context.Context, gameID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, e := range w.entries {
		if e.GameID == gameID {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			w.persist(ctx)
			return true
		}
	}
	return false
}

// Contains reports whether the game is wishlisted.
func (w *Wishlist) Contains(gameID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range w.entries {
		if e.GameID == gameID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (w *Wishlist) Clear(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = nil
	w.persist(ctx)
}

// Entries returns a copy of the wishlist in insertion order.
func (w *Wishlist) Entries() []models.WishlistEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]models.WishlistEntry(nil), w.entries...)
}

// persist writes the full entry set synchronously. Write failures are logged
// and swallowed: the in-memory state stays authoritative for the session.
// Callers must hold w.mu.
func (w *Wishlist) persist(ctx context.Context) {
	value, err := json.Marshal(w.entries)
	if err != nil {
		log.Error().Err(err).Str("key", w.key).Msg("wishlist marshal failed")
		return
	}
	if err := w.store.Save(ctx, w.key, value); err != nil {
		log.Error().Err(err).Str("key", w.key).Msg("wishlist save failed")
	}
}
