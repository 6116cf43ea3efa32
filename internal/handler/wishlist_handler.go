package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"novacore/backend/internal/catalog"
	"novacore/backend/internal/hub"
	"novacore/backend/internal/models"
	"novacore/backend/internal/wishlist"
)

// region --- DTOs ---

// AddWishlistInput names the game to wishlist.
type AddWishlistInput struct {
	GameID string `json:"game_id" binding:"required"`
}

// WishlistResponse is the session's full wishlist.
type WishlistResponse struct {
	Entries []models.WishlistEntry `json:"entries"`
	Count   int                    `json:"count"`
}

func newWishlistResponse(entries []models.WishlistEntry) WishlistResponse {
	if entries == nil {
		entries = []models.WishlistEntry{}
	}
	return WishlistResponse{Entries: entries, Count: len(entries)}
}

// endregion

// WishlistHandler serves the session-scoped, durably persisted wishlist.
type WishlistHandler struct {
	wishlists *wishlist.Manager
	catalog   *catalog.Catalog
	hub       *hub.Hub
}

// NewWishlistHandler wires a wishlist handler.
func NewWishlistHandler(wishlists *wishlist.Manager, c *catalog.Catalog, h *hub.Hub) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists, catalog: c, hub: h}
}

// GetWishlist godoc
// @Summary      Get the wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} WishlistResponse
// @Failure      401 {object} ErrorResponse
// @Router       /wishlist [get]
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sid, _ := sessionID(c)
	w := h.wishlists.ForSession(c.Request.Context(), sid)
	c.JSON(http.StatusOK, newWishlistResponse(w.Entries()))
}

// AddToWishlist godoc
// @Summary      Add a game to the wishlist
// @Description  Stores a display snapshot of the game. Adding an already wishlisted game is a no-op.
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body AddWishlistInput true "Game ID"
// @Success      200 {object} WishlistResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /wishlist [post]
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	sid, _ := sessionID(c)

	var input AddWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, ok := h.catalog.Get(input.GameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	w := h.wishlists.ForSession(c.Request.Context(), sid)
	if w.Add(c.Request.Context(), models.NewWishlistEntry(game, time.Now())) {
		h.hub.Broadcast(sid, hub.Event{Type: hub.EventWishlistAdded, Payload: gin.H{
			"game_id": game.ID,
			"title":   game.Title,
		}})
	}
	c.JSON(http.StatusOK, newWishlistResponse(w.Entries()))
}

// RemoveFromWishlist godoc
// @Summary      Remove a game from the wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        gameID path string true "Game ID"
// @Success      200 {object} WishlistResponse
// @Failure      401 {object} ErrorResponse
// @Router       /wishlist/{gameID} [delete]
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	sid, _ := sessionID(c)
	gameID := c.Param("gameID")

	w := h.wishlists.ForSession(c.Request.Context(), sid)
	if w.Remove(c.Request.Context(), gameID) {
		h.hub.Broadcast(sid, hub.Event{Type: hub.EventWishlistRemoved, Payload: gin.H{"game_id": gameID}})
	}
	c.JSON(http.StatusOK, newWishlistResponse(w.Entries()))
}

// ContainsGame godoc
// @Summary      Check whether a game is wishlisted
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        gameID path string true "Game ID"
// @Success      200 {object} map[string]bool "{"wishlisted": true}"
// @Failure      401 {object} ErrorResponse
// @Router       /wishlist/{gameID} [get]
func (h *WishlistHandler) ContainsGame(c *gin.Context) {
	sid, _ := sessionID(c)
	w := h.wishlists.ForSession(c.Request.Context(), sid)
	c.JSON(http.StatusOK, gin.H{"wishlisted": w.Contains(c.Param("gameID"))})
}

// ClearWishlist godoc
// @Summary      Empty the wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} WishlistResponse
// @Failure      401 {object} ErrorResponse
// @Router       /wishlist [delete]
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	sid, _ := sessionID(c)

	w := h.wishlists.ForSession(c.Request.Context(), sid)
	w.Clear(c.Request.Context())

	h.hub.Broadcast(sid, hub.Event{Type: hub.EventWishlistCleared, Payload: nil})
	c.JSON(http.StatusOK, newWishlistResponse(w.Entries()))
}
