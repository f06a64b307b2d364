package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return s
}

func TestPeek(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signed(t, Claims{
		Subject: "alice",
		Roles:   []string{"ADMIN"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	claims, err := Peek(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)
	assert.True(t, claims.ExpiresAt.Time.Equal(exp))
}

func TestPeekOpaqueToken(t *testing.T) {
	_, err := Peek("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiresAtFallback(t *testing.T) {
	fallback := time.Now().Add(30 * time.Minute)

	// opaque token -> fallback
	assert.Equal(t, fallback, ExpiresAt("opaque", fallback))

	// JWT without exp -> fallback
	raw := signed(t, Claims{Subject: "bob"})
	assert.Equal(t, fallback, ExpiresAt(raw, fallback))

	// JWT with exp -> exp wins
	exp := time.Now().Add(5 * time.Minute).Truncate(time.Second)
	raw = signed(t, Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}})
	assert.True(t, ExpiresAt(raw, fallback).Equal(exp))
}
