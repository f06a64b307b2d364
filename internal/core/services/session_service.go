package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"ems-gateway/internal/adapters/persistence/models"
	"ems-gateway/internal/adapters/persistence/repositories"
	"ems-gateway/internal/config"
	"ems-gateway/internal/core/domain"
	"ems-gateway/internal/pkg/secretbox"
	"ems-gateway/internal/pkg/token"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService is the session store: it owns the persisted
// token/role pair behind each browser cookie. It is injected into the
// guard middleware and the panels; nothing reads session state
// ambiently.
type SessionService struct {
	repo     repositories.SessionRepository
	box      *secretbox.Box
	idle     time.Duration
	absolute time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(repo repositories.SessionRepository, cfg *config.Config) *SessionService {
	return &SessionService{
		repo:     repo,
		box:      secretbox.New(cfg.Session.Secret),
		idle:     time.Duration(cfg.Session.IdleMinutes) * time.Minute,
		absolute: time.Duration(cfg.Session.AbsoluteHours) * time.Hour,
	}
}

// Create stores a new session for a fresh upstream token and returns it.
// The session never outlives the token: if the token carries an exp claim
// earlier than the configured absolute expiry, the earlier one wins.
func (s *SessionService) Create(ctx context.Context, tok string, role domain.Role, user domain.UserInfo) (*domain.Session, error) {
	if _, ok := domain.ParseRole(string(role)); !ok {
		return nil, domain.ErrInvalidRole
	}

	sealed, err := s.box.Seal(tok)
	if err != nil {
		return nil, err
	}

	userData, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expires := now.Add(s.absolute)
	if tokenExp := token.ExpiresAt(tok, expires); tokenExp.Before(expires) {
		expires = tokenExp
	}

	row := &models.Session{
		ID:          uuid.NewString(),
		Role:        string(role),
		TokenSealed: sealed,
		UserData:    string(userData),
		LastSeenAt:  now,
		ExpiresAt:   expires,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	return &domain.Session{
		ID:        row.ID,
		Role:      role,
		Token:     tok,
		User:      user,
		CreatedAt: now,
		LastSeen:  now,
		ExpiresAt: expires,
	}, nil
}

// Get loads and validates a session by cookie ID. Idle or malformed
// sessions are dropped and reported as expired/not-found; a hit advances
// the sliding expiry.
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	if row.IsIdle(s.idle) {
		_ = s.repo.Delete(ctx, id)
		return nil, domain.ErrSessionExpired
	}

	role, ok := domain.ParseRole(row.Role)
	if !ok {
		// a token without a parseable role is no valid session
		_ = s.repo.Delete(ctx, id)
		return nil, domain.ErrInvalidRole
	}

	tok, err := s.box.Open(row.TokenSealed)
	if err != nil {
		_ = s.repo.Delete(ctx, id)
		return nil, domain.ErrSessionNotFound
	}

	var user domain.UserInfo
	if row.UserData != "" {
		if err := json.Unmarshal([]byte(row.UserData), &user); err != nil {
			log.Printf("⚠️ Session %s has malformed user data: %v", id, err)
		}
	}

	if err := s.repo.Touch(ctx, id); err != nil {
		log.Printf("⚠️ Failed to touch session %s: %v", id, err)
	}

	return &domain.Session{
		ID:        row.ID,
		Role:      role,
		Token:     tok,
		User:      user,
		CreatedAt: row.CreatedAt,
		LastSeen:  row.LastSeenAt,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

// Clear erases a session (logout)
func (s *SessionService) Clear(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
