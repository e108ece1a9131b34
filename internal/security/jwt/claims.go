package jwtutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shelfmart/storefront-api/internal/models"
)

// SessionClaims carries the identity the storefront shows: user ID as
// subject, the display role, and a token version so logout can revoke
// every outstanding token at once.
type SessionClaims struct {
	Role         models.Role `json:"role"`
	TokenVersion int         `json:"tv"`
	jwt.RegisteredClaims
}

func NewSessionClaims(userID string, role models.Role, tokenVersion int, ttl time.Duration) SessionClaims {
	now := time.Now()
	return SessionClaims{
		Role:         role,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
