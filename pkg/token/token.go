package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"novacore/backend/internal/config"
)

// Sessions are anonymous: a token carries a random session id, nothing else.
// Carts and wishlists are scoped to that id.

// Generate creates a fresh session id and the signed token carrying it.
func Generate() (string, string, error) {
	sessionID := uuid.NewString()

	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(time.Hour * 24 * 30).Unix(), // Token expires in 30 days
		"iat": time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

// Parse validates a session token and extracts the session id.
func Parse(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return "", fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return "", fmt.Errorf("invalid token")
	}
	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("token has no session id")
	}
	return sessionID, nil
}
