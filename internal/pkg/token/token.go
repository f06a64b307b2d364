// Package token inspects the upstream access token. The gateway never
// holds the upstream signing secret, so the token is parsed without
// signature verification; the claims are only used for low-stakes
// decisions (session lifetime, role hint). Authorization is always
// re-validated by the upstream API itself.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is not a parseable JWT")
)

// Claims are the upstream claims the gateway cares about
type Claims struct {
	Subject string   `json:"sub"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}

// Peek decodes the claims of an upstream JWT without verifying its
// signature. Returns ErrTokenInvalid for anything that is not JWT-shaped.
func Peek(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ExpiresAt returns the token's expiry, or the fallback when the token
// carries no exp claim or is not a JWT at all. Some upstreams issue
// opaque tokens.
func ExpiresAt(tokenString string, fallback time.Time) time.Time {
	claims, err := Peek(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return fallback
	}
	return claims.ExpiresAt.Time
}
