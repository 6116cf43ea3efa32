package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"novacore/backend/pkg/token"
)

// SessionMiddleware requires a valid session token and puts the session id on
// the context. Cart, wishlist and notification routes use it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionFromHeader(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Valid session token required"})
			return
		}
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// OptionalSessionMiddleware sets the session id if a valid token is present,
// but does not fail if the token is missing or invalid.
func OptionalSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID, ok := sessionFromHeader(c); ok {
			c.Set("sessionID", sessionID)
		}
		c.Next()
	}
}

func sessionFromHeader(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	sessionID, err := token.Parse(parts[1])
	if err != nil {
		return "", false
	}
	return sessionID, true
}
