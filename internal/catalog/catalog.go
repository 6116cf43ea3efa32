package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"novacore/backend/internal/models"
)

//go:embed games.json
var seedData []byte

// Catalog is the immutable set of game records available for browsing. It is
// built once at process start and handed to whoever queries it; no method
// mutates it.
type Catalog struct {
	games []models.GameRecord
	byID  map[string]int
}

// New builds a catalog from a fixed record list. The list is copied so later
// changes by the caller cannot leak in.
func New(games []models.GameRecord) *Catalog {
	owned := append([]models.GameRecord(nil), games...)
	byID := make(map[string]int, len(owned))
	for i, g := range owned {
		byID[g.ID] = i
	}
	return &Catalog{games: owned, byID: byID}
}

type seedGame struct {
	models.GameRecord
	ReleaseDate string `json:"release_date"`
}

// Load parses the embedded seed data into a catalog. Records violating the
// discount invariant (discount set but no higher original price) are kept and
// logged as data-quality warnings rather than rejected.
func Load() (*Catalog, error) {
	var seeds []seedGame
	if err := json.Unmarshal(seedData, &seeds); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}

	games := make([]models.GameRecord, 0, len(seeds))
	for _, s := range seeds {
		g := s.GameRecord
		if s.ReleaseDate != "" {
			date, err := time.Parse("2006-01-02", s.ReleaseDate)
			if err != nil {
				return nil, fmt.Errorf("game %s: bad release date %q: %w", g.ID, s.ReleaseDate, err)
			}
			g.ReleaseDate = date
		}
		if g.DRM == "" {
			g.DRM = models.DefaultDRM
		}
		if len(g.Editions) == 0 {
			g.Editions = []models.Edition{{
				ID:              "standard",
				Name:            "Standard Edition",
				Price:           g.Price,
				DiscountPercent: g.DiscountPercent,
			}}
		}
		if g.DiscountPercent > 0 && (g.OriginalPrice == 0 || g.Price >= g.OriginalPrice) {
			log.Warn().Str("game", g.ID).
				Float64("price", g.Price).
				Float64("original_price", g.OriginalPrice).
				Msg("catalog record has a discount without a higher original price")
		}
		games = append(games, g)
	}

	return New(games), nil
}

// Games returns a copy of the full record list in catalog order.
func (c *Catalog) Games() []models.GameRecord {
	return append([]models.GameRecord(nil), c.games...)
}

// Get returns the record with the given id.
func (c *Catalog) Get(id string) (models.GameRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.GameRecord{}, false
	}
	return c.games[i], true
}

// Len reports the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.games)
}
