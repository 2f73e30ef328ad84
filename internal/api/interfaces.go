package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	// Verifies signature and time claims. Any rejected token gives ErrInvalidToken
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
