package services

import (
	"context"
	"sync"
	"time"

	"ems-gateway/internal/adapters/persistence/models"
	"ems-gateway/internal/config"

	"gorm.io/gorm"
)

// memSessionRepo is an in-memory SessionRepository for service tests
type memSessionRepo struct {
	mu   sync.Mutex
	rows map[string]*models.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{rows: map[string]*models.Session{}}
}

func (r *memSessionRepo) Create(_ context.Context, s *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok || s.IsExpired() {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) Touch(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.rows[id]; ok {
		s.LastSeenAt = time.Now()
	}
	return nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memSessionRepo) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.rows {
		if s.IsExpired() {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *memSessionRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.rows {
		if !s.IsExpired() {
			n++
		}
	}
	return n, nil
}

func (r *memSessionRepo) ListActive(_ context.Context) ([]*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Session
	for _, s := range r.rows {
		if !s.IsExpired() {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// testConfig returns a config usable without any environment
func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Session: config.SessionConfig{
			Secret:        "test-secret",
			IdleMinutes:   60,
			AbsoluteHours: 12,
		},
		Cookie: config.CookieConfig{Name: "ems_session", SameSite: "lax"},
	}
}
