package services

import (
	"context"
	"errors"

	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/core/domain"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoUsableRole       = errors.New("account has no usable role")
	ErrMissingField       = errors.New("required field missing")
)

// AuthService proxies login/register to the EMS API and manages the
// gateway session around them
type AuthService struct {
	api      *upstream.Client
	sessions *SessionService
}

// NewAuthService creates a new auth service
func NewAuthService(api *upstream.Client, sessions *SessionService) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates upstream and opens a gateway session. The first
// parseable entry of the upstream roles list decides the session role.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*domain.Session, error) {
	result, err := s.api.Login(ctx, input.Username, input.Password)
	if err != nil {
		var httpErr *upstream.HTTPError
		if errors.As(err, &httpErr) && (httpErr.Status == 401 || httpErr.Status == 403) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	role, ok := primaryRole(result.Roles)
	if !ok {
		return nil, ErrNoUsableRole
	}

	user := result.User
	if user.Role == "" {
		user.Role = string(role)
	}
	if user.Username == "" {
		user.Username = input.Username
	}

	return s.sessions.Create(ctx, result.Token, role, user)
}

// Register creates an account upstream. No session is opened; the new
// account signs in at /login afterwards.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) error {
	return s.api.Register(ctx, &upstream.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
}

// Logout clears the gateway session. The upstream token is simply
// forgotten; the EMS API has no revocation endpoint.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

// primaryRole picks the first parseable role from the upstream list
func primaryRole(roles []string) (domain.Role, bool) {
	for _, r := range roles {
		if role, ok := domain.ParseRole(r); ok {
			return role, true
		}
	}
	return "", false
}
