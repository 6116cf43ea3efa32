package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorResponse defines the structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// sessionID reads the session id set by the auth middleware. The second result
// is false on routes using the optional middleware when no token was sent.
func sessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get("sessionID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func queryInt(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return n
}

func queryFloat(c *gin.Context, name string) float64 {
	f, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return f
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
