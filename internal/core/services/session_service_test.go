package services

import (
	"context"
	"testing"
	"time"

	"ems-gateway/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateGetRoundTrip(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo, testConfig())
	ctx := context.Background()

	created, err := svc.Create(ctx, "opaque-token", domain.RoleAdmin, domain.UserInfo{Username: "root"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// the stored row never contains the raw token
	row, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotContains(t, row.TokenSealed, "opaque-token")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", got.Token)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	assert.Equal(t, "root", got.User.Username)
	assert.True(t, got.Valid())
}

func TestSessionCreateRejectsUnknownRole(t *testing.T) {
	svc := NewSessionService(newMemSessionRepo(), testConfig())

	_, err := svc.Create(context.Background(), "tok", domain.Role("ROOT"), domain.UserInfo{})

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestSessionGetMissing(t *testing.T) {
	svc := NewSessionService(newMemSessionRepo(), testConfig())

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionExpiryFollowsTokenExp(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo, testConfig())

	// a JWT expiring in 5 minutes caps the session even though the
	// absolute expiry is 12 hours
	exp := time.Now().Add(5 * time.Minute)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("upstream"))
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), raw, domain.RoleHR, domain.UserInfo{})
	require.NoError(t, err)

	assert.WithinDuration(t, exp, created.ExpiresAt, 2*time.Second)
}

func TestSessionIdleDropped(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo, testConfig())
	ctx := context.Background()

	created, err := svc.Create(ctx, "tok", domain.RoleEmployee, domain.UserInfo{})
	require.NoError(t, err)

	// simulate long inactivity
	repo.mu.Lock()
	repo.rows[created.ID].LastSeenAt = time.Now().Add(-2 * time.Hour)
	repo.mu.Unlock()

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	// the row is gone for good
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionUnparseableRoleDropped(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo, testConfig())
	ctx := context.Background()

	created, err := svc.Create(ctx, "tok", domain.RoleEmployee, domain.UserInfo{})
	require.NoError(t, err)

	// a row whose role was corrupted out-of-band is no valid session
	repo.mu.Lock()
	repo.rows[created.ID].Role = "MANAGER"
	repo.mu.Unlock()

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestSessionClear(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo, testConfig())
	ctx := context.Background()

	created, err := svc.Create(ctx, "tok", domain.RoleAdmin, domain.UserInfo{})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
