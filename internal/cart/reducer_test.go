package cart

import (
	"math"
	"testing"

	"novacore/backend/internal/models"
)

var (
	testGame = models.GameRecord{
		ID:        "starfall",
		Title:     "Starfall Vanguard",
		Developer: "Meridian Forge",
	}
	standardEdition = models.Edition{ID: "standard", Name: "Standard Edition", Price: 59.99}
	deluxeEdition   = models.Edition{ID: "deluxe", Name: "Deluxe Edition", Price: 79.99, DiscountPercent: 25}
)

func TestAddItem_NewAndIncrement(t *testing.T) {
	c := AddItem(nil, testGame, standardEdition)
	if len(c) != 1 {
		t.Fatalf("want 1 item, got %d", len(c))
	}
	item := c[0]
	if item.ID != "starfall:standard" {
		t.Fatalf("unexpected item id %q", item.ID)
	}
	if item.Quantity != 1 || item.UnitPrice != 59.99 || item.Edition != "Standard Edition" {
		t.Fatalf("unexpected item: %+v", item)
	}

	// Same game+edition increments.
	c = AddItem(c, testGame, standardEdition)
	if len(c) != 1 || c[0].Quantity != 2 {
		t.Fatalf("want single item with quantity 2, got %+v", c)
	}

	// A different edition of the same game is a distinct line item.
	c = AddItem(c, testGame, deluxeEdition)
	if len(c) != 2 {
		t.Fatalf("want 2 items, got %d", len(c))
	}
	if c[1].ID != "starfall:deluxe" || c[1].Quantity != 1 {
		t.Fatalf("unexpected second item: %+v", c[1])
	}
}

func TestAddItem_DoesNotMutateInput(t *testing.T) {
	orig := AddItem(nil, testGame, standardEdition)
	_ = AddItem(orig, testGame, standardEdition)
	if orig[0].Quantity != 1 {
		t.Fatalf("input cart was mutated: %+v", orig[0])
	}
}

func TestSetQuantity(t *testing.T) {
	c := AddItem(nil, testGame, standardEdition)

	c2 := SetQuantity(c, "starfall:standard", 5)
	if c2[0].Quantity != 5 {
		t.Fatalf("want quantity 5, got %d", c2[0].Quantity)
	}
	if c[0].Quantity != 1 {
		t.Fatal("input cart was mutated")
	}

	// Zero and negative quantities remove the item.
	if got := SetQuantity(c2, "starfall:standard", 0); len(got) != 0 {
		t.Fatalf("quantity 0 should remove, got %+v", got)
	}
	if got := SetQuantity(c2, "starfall:standard", -3); len(got) != 0 {
		t.Fatalf("negative quantity should remove, got %+v", got)
	}

	// Unknown ids are a no-op.
	if got := SetQuantity(c2, "nope:standard", 9); len(got) != 1 || got[0].Quantity != 5 {
		t.Fatalf("unexpected cart: %+v", got)
	}
}

func TestQuantityInvariant(t *testing.T) {
	var c []models.CartLineItem
	c = AddItem(c, testGame, standardEdition)
	c = AddItem(c, testGame, deluxeEdition)
	c = AddItem(c, testGame, standardEdition)
	c = SetQuantity(c, "starfall:deluxe", 3)
	c = SetQuantity(c, "starfall:standard", 0)

	for _, item := range c {
		if item.Quantity < 1 {
			t.Fatalf("item %s stored with quantity %d", item.ID, item.Quantity)
		}
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	c := AddItem(nil, testGame, standardEdition)
	c = AddItem(c, testGame, deluxeEdition)

	c2 := RemoveItem(c, "starfall:standard")
	if len(c2) != 1 || c2[0].ID != "starfall:deluxe" {
		t.Fatalf("unexpected cart after remove: %+v", c2)
	}
	if len(c) != 2 {
		t.Fatal("input cart was mutated")
	}

	if got := Clear(c); len(got) != 0 {
		t.Fatalf("clear should empty the cart, got %+v", got)
	}
}

func TestSubtotal(t *testing.T) {
	// One item at 59.99 with a 50% discount, quantity 2.
	c := []models.CartLineItem{{
		ID: "g:standard", UnitPrice: 59.99, DiscountPercent: 50, Quantity: 2,
	}}
	if got := Subtotal(c); got != 59.99 {
		t.Fatalf("subtotal = %v, want 59.99", got)
	}

	// Undiscounted items use the plain unit price.
	c = append(c, models.CartLineItem{ID: "h:standard", UnitPrice: 10, Quantity: 3})
	if got := Subtotal(c); math.Abs(got-89.99) > 1e-9 {
		t.Fatalf("subtotal = %v, want 89.99", got)
	}

	if got := Subtotal(nil); got != 0 {
		t.Fatalf("empty subtotal = %v, want 0", got)
	}
}

func TestStore_SessionIsolation(t *testing.T) {
	s := NewStore()

	s.Update("sess-a", func(items []models.CartLineItem) []models.CartLineItem {
		return AddItem(items, testGame, standardEdition)
	})

	if got := s.Get("sess-b"); len(got) != 0 {
		t.Fatalf("session b should have an empty cart, got %+v", got)
	}
	if got := s.Get("sess-a"); len(got) != 1 {
		t.Fatalf("session a should have 1 item, got %+v", got)
	}

	// Mutating the returned copy must not touch the stored cart.
	got := s.Get("sess-a")
	got[0].Quantity = 99
	if s.Get("sess-a")[0].Quantity != 1 {
		t.Fatal("store handed out a live reference")
	}
}
