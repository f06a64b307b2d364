package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, handler http.Handler) (*AuthService, *SessionService) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := NewSessionService(newMemSessionRepo(), testConfig())
	return NewAuthService(upstream.NewWithBaseURL(srv.URL), sessions), sessions
}

func TestLoginOpensSession(t *testing.T) {
	auth, sessions := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		json.NewEncoder(w).Encode(upstream.LoginResult{
			Token: "tok-1",
			Roles: []string{"HR"},
			User:  domain.UserInfo{Username: "hr1", Email: "hr1@x"},
		})
	}))

	sess, err := auth.Login(context.Background(), &LoginInput{Username: "hr1", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleHR, sess.Role)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, "HR", sess.User.Role)

	// session is retrievable by its cookie ID
	got, err := sessions.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth, _ := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"})
	}))

	_, err := auth.Login(context.Background(), &LoginInput{Username: "u", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginNoUsableRole(t *testing.T) {
	auth, _ := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(upstream.LoginResult{Token: "tok", Roles: []string{"INTERN"}})
	}))

	_, err := auth.Login(context.Background(), &LoginInput{Username: "u", Password: "p"})

	assert.ErrorIs(t, err, ErrNoUsableRole)
}

func TestLoginTransportFailure(t *testing.T) {
	sessions := NewSessionService(newMemSessionRepo(), testConfig())
	auth := NewAuthService(upstream.NewWithBaseURL("http://127.0.0.1:1"), sessions)

	_, err := auth.Login(context.Background(), &LoginInput{Username: "u", Password: "p"})

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestPrimaryRole(t *testing.T) {
	role, ok := primaryRole([]string{"ADMIN", "HR"})
	assert.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, role)

	// first parseable wins, unknown entries are skipped
	role, ok = primaryRole([]string{"SUPER", "EMPLOYEE"})
	assert.True(t, ok)
	assert.Equal(t, domain.RoleEmployee, role)

	_, ok = primaryRole(nil)
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	auth, sessions := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(upstream.LoginResult{Token: "tok", Roles: []string{"ADMIN"}})
	}))

	sess, err := auth.Login(context.Background(), &LoginInput{Username: "a", Password: "p"})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(context.Background(), sess.ID))

	_, err = sessions.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
