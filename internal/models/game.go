package models

import "time"

// Edition is a purchasable variant of a game (Standard/Deluxe/Ultimate) with its
// own price and optional discount.
type Edition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
}

// GameRecord represents a purchasable title in the catalog.
// Records are defined once at process start and never mutated at runtime.
type GameRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	TitleAlt        string    `json:"title_alt,omitempty"` // localized title
	Developer       string    `json:"developer"`
	Publisher       string    `json:"publisher"`
	Price           float64   `json:"price"`
	OriginalPrice   float64   `json:"original_price,omitempty"`
	DiscountPercent float64   `json:"discount_percent,omitempty"`
	Genres          []string  `json:"genres"`
	Tags            []string  `json:"tags"`
	Platforms       []string  `json:"platforms"`
	DRM             string    `json:"drm"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"review_count"`
	ReleaseDate     time.Time `json:"release_date"`
	CoverImage      string    `json:"cover_image"`
	Screenshots     []string  `json:"screenshots"`
	IsNewRelease    bool      `json:"is_new_release"`
	IsBestSeller    bool      `json:"is_best_seller"`
	IsOnSale        bool      `json:"is_on_sale"`
	IsEarlyAccess   bool      `json:"is_early_access"`
	Editions        []Edition `json:"editions"`
}

// Edition returns the edition with the given id, or false if the game has no
// such edition.
func (g GameRecord) Edition(editionID string) (Edition, bool) {
	for _, e := range g.Editions {
		if e.ID == editionID {
			return e, true
		}
	}
	return Edition{}, false
}
