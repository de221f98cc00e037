package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// represents session token claims
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// issues and validates signed session tokens
type Issuer struct {
	secret []byte
	ttl    time.Duration
}
