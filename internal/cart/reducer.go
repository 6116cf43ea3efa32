package cart

import "novacore/backend/internal/models"

// The reducer functions below are pure: they never modify the cart they are
// given and always hand back a fresh slice, so callers can keep old states
// around (undo, history) safely.

func clone(cart []models.CartLineItem) []models.CartLineItem {
	return append([]models.CartLineItem(nil), cart...)
}

// AddItem adds one unit of the given game edition. If a line item with the
// same game/edition key already exists its quantity is incremented, otherwise
// a new line item with quantity 1 is appended.
func AddItem(cart []models.CartLineItem, game models.GameRecord, edition models.Edition) []models.CartLineItem {
	id := models.LineItemID(game.ID, edition.ID)

	for i, item := range cart {
		if item.ID == id {
			out := clone(cart)
			out[i].Quantity++
			return out
		}
	}

	return append(clone(cart), models.CartLineItem{
		ID:              id,
		GameID:          game.ID,
		EditionID:       edition.ID,
		Title:           game.Title,
		Developer:       game.Developer,
		Edition:         edition.Name,
		UnitPrice:       edition.Price,
		DiscountPercent: edition.DiscountPercent,
		Quantity:        1,
	})
}

// SetQuantity replaces the quantity of the identified line item. A quantity of
// zero or less removes the item, so non-positive quantities are never stored.
func SetQuantity(cart []models.CartLineItem, itemID string, quantity int) []models.CartLineItem {
	if quantity <= 0 {
		return RemoveItem(cart, itemID)
	}

	out := clone(cart)
	for i, item := range out {
		if item.ID == itemID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// RemoveItem drops the identified line item. Unknown ids are a no-op.
func RemoveItem(cart []models.CartLineItem, itemID string) []models.CartLineItem {
	out := make([]models.CartLineItem, 0, len(cart))
	for _, item := range cart {
		if item.ID != itemID {
			out = append(out, item)
		}
	}
	return out
}

// Clear returns an empty cart.
func Clear(cart []models.CartLineItem) []models.CartLineItem {
	return []models.CartLineItem{}
}

// Subtotal sums the discounted unit price times quantity over all line items.
func Subtotal(cart []models.CartLineItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.DiscountedUnitPrice() * float64(item.Quantity)
	}
	return total
}

// Count sums the quantities of all line items.
func Count(cart []models.CartLineItem) int {
	var n int
	for _, item := range cart {
		n += item.Quantity
	}
	return n
}
