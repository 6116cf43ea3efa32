package models

// CartLineItem is one purchasable selection in a shopping cart. Distinct
// editions of the same game are distinct line items.
type CartLineItem struct {
	ID              string  `json:"id"` // composite key: gameID + ":" + editionID
	GameID          string  `json:"game_id"`
	EditionID       string  `json:"edition_id"`
	Title           string  `json:"title"`
	Developer       string  `json:"developer"`
	Edition         string  `json:"edition"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	Quantity        int     `json:"quantity"` // always >= 1 while stored
}

// LineItemID builds the composite cart key for a game/edition pair.
func LineItemID(gameID, editionID string) string {
	return gameID + ":" + editionID
}

// DiscountedUnitPrice is the unit price after applying the line discount.
func (i CartLineItem) DiscountedUnitPrice() float64 {
	if i.DiscountPercent > 0 {
		return i.UnitPrice * (1 - i.DiscountPercent/100)
	}
	return i.UnitPrice
}
