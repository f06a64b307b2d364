package repositories

import (
	"context"

	"ems-gateway/internal/adapters/persistence/models"
)

// SessionRepository defines session persistence operations
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	ListActive(ctx context.Context) ([]*models.Session, error)
}
