package reviews

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"novacore/backend/internal/models"
)

// Store holds submitted reviews per game in memory. Nothing here is durable:
// reviews live for the process lifetime only.
type Store struct {
	mu     sync.RWMutex
	byGame map[string][]models.ReviewRecord
}

// NewStore creates an empty review store.
func NewStore() *Store {
	return &Store{byGame: make(map[string][]models.ReviewRecord)}
}

// Submit validates the review and, when clean, stamps id/creation time and
// stores it. On validation failure the failure list is returned and nothing is
// stored.
func (s *Store) Submit(review models.ReviewRecord) (models.ReviewRecord, []string) {
	if failures := review.Validate(); len(failures) > 0 {
		return models.ReviewRecord{}, failures
	}

	review.ID = uuid.NewString()
	review.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byGame[review.GameID] = append(s.byGame[review.GameID], review)
	return review, nil
}

// List returns a copy of the game's reviews in submission order.
func (s *Store) List(gameID string) []models.ReviewRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ReviewRecord(nil), s.byGame[gameID]...)
}
