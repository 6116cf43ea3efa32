package models

import "time"

// WishlistEntry is a bookmark linking a session to a game, carrying a
// denormalized display snapshot captured at add-time.
type WishlistEntry struct {
	GameID          string     `json:"game_id"`
	Title           string     `json:"title"`
	Price           float64    `json:"price"`
	OriginalPrice   float64    `json:"original_price,omitempty"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
	CoverImage      string     `json:"cover_image"`
	Rating          float64    `json:"rating"`
	Platforms       []string   `json:"platforms"`
	Genre           string     `json:"genre,omitempty"`
	DRM             string     `json:"drm"`
	AddedDate       time.Time  `json:"added_date"`
	ReleaseDate     *time.Time `json:"release_date,omitempty"`
}

// DefaultDRM is assumed when a catalog record carries no DRM information.
const DefaultDRM = "drm-free"

// NewWishlistEntry builds the wishlist snapshot for a game. This is the only
// place the catalog record is reshaped into wishlist form: the primary genre is
// the first genre token, and a missing DRM type defaults to DefaultDRM.
func NewWishlistEntry(game GameRecord, addedAt time.Time) WishlistEntry {
	genre := ""
	if len(game.Genres) > 0 {
		genre = game.Genres[0]
	}
	drm := game.DRM
	if drm == "" {
		drm = DefaultDRM
	}
	release := game.ReleaseDate
	entry := WishlistEntry{
		GameID:          game.ID,
		Title:           game.Title,
		Price:           game.Price,
		OriginalPrice:   game.OriginalPrice,
		DiscountPercent: game.DiscountPercent,
		CoverImage:      game.CoverImage,
		Rating:          game.Rating,
		Platforms:       append([]string(nil), game.Platforms...),
		Genre:           genre,
		DRM:             drm,
		AddedDate:       addedAt,
	}
	if !release.IsZero() {
		entry.ReleaseDate = &release
	}
	return entry
}
