package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shelfmart/storefront-api/internal/models"
)

var cfg = LoadConfig()

// SignSession issues an HS256 session token.
func SignSession(userID string, role models.Role, tokenVersion int, ttl time.Duration) (string, error) {
	claims := NewSessionClaims(userID, role, tokenVersion, ttl)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
}

// ParseSession verifies the signature and expiry (with leeway) and
// returns the claims.
func ParseSession(tokenStr string) (*SessionClaims, error) {
	parser := jwt.NewParser(jwt.WithLeeway(cfg.ClockSkew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return cfg.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
