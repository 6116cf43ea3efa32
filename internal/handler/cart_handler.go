package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novacore/backend/internal/cart"
	"novacore/backend/internal/catalog"
	"novacore/backend/internal/hub"
	"novacore/backend/internal/models"
)

// region --- DTOs ---

// AddCartItemInput selects a game edition to add to the cart.
type AddCartItemInput struct {
	GameID    string `json:"game_id" binding:"required"`
	EditionID string `json:"edition_id"` // defaults to "standard"
}

// SetQuantityInput replaces a line item's quantity. Zero removes the item.
type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the full cart state returned after every operation.
type CartResponse struct {
	Items    []models.CartLineItem `json:"items"`
	Count    int                   `json:"count"`
	Subtotal float64               `json:"subtotal"`
}

func newCartResponse(items []models.CartLineItem) CartResponse {
	if items == nil {
		items = []models.CartLineItem{}
	}
	return CartResponse{
		Items:    items,
		Count:    cart.Count(items),
		Subtotal: cart.Subtotal(items),
	}
}

// endregion

// CartHandler serves the session-scoped shopping cart.
type CartHandler struct {
	carts   *cart.Store
	catalog *catalog.Catalog
	hub     *hub.Hub
}

// NewCartHandler wires a cart handler.
func NewCartHandler(carts *cart.Store, c *catalog.Catalog, h *hub.Hub) *CartHandler {
	return &CartHandler{carts: carts, catalog: c, hub: h}
}

// GetCart godoc
// @Summary      Get the cart
// @Description  Returns the session's cart with item count and subtotal.
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} CartResponse
// @Failure      401 {object} ErrorResponse
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sid, _ := sessionID(c)
	c.JSON(http.StatusOK, newCartResponse(h.carts.Get(sid)))
}

// AddItem godoc
// @Summary      Add a game edition to the cart
// @Description  Adds one unit; adding the same game/edition again increments its quantity.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AddCartItemInput true "Game and edition"
// @Success      200 {object} CartResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game or edition not found"
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sid, _ := sessionID(c)

	var input AddCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.EditionID == "" {
		input.EditionID = "standard"
	}

	game, ok := h.catalog.Get(input.GameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	edition, ok := game.Edition(input.EditionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Edition not found"})
		return
	}

	items := h.carts.Update(sid, func(items []models.CartLineItem) []models.CartLineItem {
		return cart.AddItem(items, game, edition)
	})

	h.hub.Broadcast(sid, hub.Event{Type: hub.EventCartItemAdded, Payload: gin.H{
		"item_id": models.LineItemID(game.ID, edition.ID),
		"title":   game.Title,
		"edition": edition.Name,
	}})
	c.JSON(http.StatusOK, newCartResponse(items))
}

// SetQuantity godoc
// @Summary      Set a line item's quantity
// @Description  Replaces the quantity; zero or less removes the line item.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path string           true "Line item ID (gameID:editionID)"
// @Param        input body SetQuantityInput true "New quantity"
// @Success      200 {object} CartResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	sid, _ := sessionID(c)
	itemID := c.Param("id")

	var input SetQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := h.carts.Update(sid, func(items []models.CartLineItem) []models.CartLineItem {
		return cart.SetQuantity(items, itemID, input.Quantity)
	})

	eventType := hub.EventCartItemUpdated
	if input.Quantity <= 0 {
		eventType = hub.EventCartItemRemoved
	}
	h.hub.Broadcast(sid, hub.Event{Type: eventType, Payload: gin.H{"item_id": itemID}})
	c.JSON(http.StatusOK, newCartResponse(items))
}

// RemoveItem godoc
// @Summary      Remove a line item
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Line item ID (gameID:editionID)"
// @Success      200 {object} CartResponse
// @Failure      401 {object} ErrorResponse
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sid, _ := sessionID(c)
	itemID := c.Param("id")

	items := h.carts.Update(sid, func(items []models.CartLineItem) []models.CartLineItem {
		return cart.RemoveItem(items, itemID)
	})

	h.hub.Broadcast(sid, hub.Event{Type: hub.EventCartItemRemoved, Payload: gin.H{"item_id": itemID}})
	c.JSON(http.StatusOK, newCartResponse(items))
}

// ClearCart godoc
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} CartResponse
// @Failure      401 {object} ErrorResponse
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	sid, _ := sessionID(c)

	items := h.carts.Update(sid, cart.Clear)

	h.hub.Broadcast(sid, hub.Event{Type: hub.EventCartCleared, Payload: nil})
	c.JSON(http.StatusOK, newCartResponse(items))
}
