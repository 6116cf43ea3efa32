package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novacore/backend/internal/catalog"
	"novacore/backend/internal/models"
	"novacore/backend/internal/reviews"
)

// region --- DTOs ---

// ReviewInput is a review submission.
type ReviewInput struct {
	Rating        int      `json:"rating" binding:"required"`
	Recommended   bool     `json:"recommended"`
	Title         string   `json:"title"`
	Content       string   `json:"content" binding:"required"`
	Tags          []string `json:"tags"`
	PlaytimeHours float64  `json:"playtime_hours"`
	PurchaseType  string   `json:"purchase_type"`
}

// ValidationErrorResponse carries the full list of submission failures.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// ReviewListResponse is a game's reviews plus their aggregated statistics.
type ReviewListResponse struct {
	Reviews []models.ReviewRecord `json:"reviews"`
	Stats   reviews.Summary       `json:"stats"`
}

// endregion

// ReviewHandler serves per-game reviews and their statistics.
type ReviewHandler struct {
	reviews *reviews.Store
	catalog *catalog.Catalog
}

// NewReviewHandler wires a review handler.
func NewReviewHandler(store *reviews.Store, c *catalog.Catalog) *ReviewHandler {
	return &ReviewHandler{reviews: store, catalog: c}
}

// ListReviews godoc
// @Summary      List a game's reviews
// @Description  Returns all reviews for the game together with aggregated statistics.
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} ReviewListResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	gameID := c.Param("id")
	if _, ok := h.catalog.Get(gameID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	list := h.reviews.List(gameID)
	if list == nil {
		list = []models.ReviewRecord{}
	}
	c.JSON(http.StatusOK, ReviewListResponse{
		Reviews: list,
		Stats:   reviews.Summarize(list),
	})
}

// GetReviewStats godoc
// @Summary      Get a game's review statistics
// @Description  Average rating, recommendation share, rating histogram, 30-day trend, verified-purchase share, average playtime and most mentioned tags.
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} reviews.Summary
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/reviews/stats [get]
func (h *ReviewHandler) GetReviewStats(c *gin.Context) {
	gameID := c.Param("id")
	if _, ok := h.catalog.Get(gameID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, reviews.Summarize(h.reviews.List(gameID)))
}

// SubmitReview godoc
// @Summary      Submit a review
// @Description  Validates the submission (rating 1-5, content length, tag count) and rejects it wholesale on any failure.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path string      true "Game ID"
// @Param        input body ReviewInput true "Review"
// @Success      201 {object} models.ReviewRecord
// @Failure      400 {object} ValidationErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	gameID := c.Param("id")
	if _, ok := h.catalog.Get(gameID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, failures := h.reviews.Submit(models.ReviewRecord{
		GameID:        gameID,
		Rating:        input.Rating,
		Recommended:   input.Recommended,
		Title:         input.Title,
		Content:       input.Content,
		Tags:          input.Tags,
		PlaytimeHours: input.PlaytimeHours,
		PurchaseType:  input.PurchaseType,
	})
	if len(failures) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: failures})
		return
	}

	c.JSON(http.StatusCreated, review)
}
