package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novacore/backend/pkg/token"
)

// SessionResponse carries a freshly issued session token.
type SessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
}

// CreateSession godoc
// @Summary      Start an anonymous session
// @Description  Issues the bearer token that scopes the cart, wishlist and notification stream.
// @Tags         session
// @Produce      json
// @Success      201 {object} SessionResponse
// @Failure      500 {object} ErrorResponse
// @Router       /session [post]
func CreateSession(c *gin.Context) {
	signed, sessionID, err := token.Generate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, SessionResponse{Token: signed, SessionID: sessionID})
}
