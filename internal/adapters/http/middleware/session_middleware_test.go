package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ems-gateway/internal/adapters/persistence/models"
	"ems-gateway/internal/config"
	"ems-gateway/internal/core/domain"
	"ems-gateway/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memRepo struct {
	mu   sync.Mutex
	rows map[string]*models.Session
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]*models.Session)}
}

func (r *memRepo) Create(_ context.Context, s *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.rows[s.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.IsExpired() {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *memRepo) Touch(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[id]; ok {
		row.LastSeenAt = time.Now()
	}
	return nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memRepo) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, row := range r.rows {
		if row.IsExpired() {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *memRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *memRepo) ListActive(_ context.Context) ([]*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Session, 0, len(r.rows))
	for _, row := range r.rows {
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

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

// guardedApp wires LoadSession and AccessGuard the way the real route
// setup does, with one probe route per panel.
func guardedApp(t *testing.T) (*fiber.App, *services.SessionService) {
	t.Helper()

	cfg := testConfig()
	sessions := services.NewSessionService(newMemRepo(), cfg)

	app := fiber.New()
	app.Use(LoadSession(sessions, cfg))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	for _, prefix := range []string{"/admin", "/hr", "/employee"} {
		grp := app.Group(prefix, AccessGuard())
		grp.Get("/", ok)
		grp.Get("/sub", ok)
	}
	app.Get("/login", ok)
	app.Get("/open", ok)

	return app, sessions
}

func signIn(t *testing.T, sessions *services.SessionService, role domain.Role) string {
	t.Helper()
	sess, err := sessions.Create(context.Background(), "upstream-token", role, domain.UserInfo{Username: "u"})
	require.NoError(t, err)
	return sess.ID
}

func TestAccessGuardRedirectsAnonymous(t *testing.T) {
	app, _ := guardedApp(t)

	for _, path := range []string{"/admin", "/admin/sub", "/hr", "/employee"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestAccessGuardRedirectsWrongRole(t *testing.T) {
	app, sessions := guardedApp(t)
	id := signIn(t, sessions, domain.RoleEmployee)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "ems_session", Value: id})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAccessGuardAllowsMatchingRole(t *testing.T) {
	app, sessions := guardedApp(t)

	cases := []struct {
		role domain.Role
		path string
	}{
		{domain.RoleAdmin, "/admin"},
		{domain.RoleAdmin, "/admin/sub"},
		{domain.RoleHR, "/hr"},
		{domain.RoleEmployee, "/employee"},
	}
	for _, tc := range cases {
		id := signIn(t, sessions, tc.role)
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		req.AddCookie(&http.Cookie{Name: "ems_session", Value: id})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "%s as %s", tc.path, tc.role)
	}
}

func TestAccessGuardIgnoresBogusCookie(t *testing.T) {
	app, _ := guardedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/hr", nil)
	req.AddCookie(&http.Cookie{Name: "ems_session", Value: "not-a-session"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestLoadSessionLeavesOpenRoutesAlone(t *testing.T) {
	app, _ := guardedApp(t)

	for _, path := range []string{"/open", "/login"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestSessionFromCtxExposesLoadedSession(t *testing.T) {
	cfg := testConfig()
	sessions := services.NewSessionService(newMemRepo(), cfg)
	id := signIn(t, sessions, domain.RoleAdmin)

	app := fiber.New()
	app.Use(LoadSession(sessions, cfg))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		sess := SessionFromCtx(c)
		require.NotNil(t, sess)
		assert.Equal(t, domain.RoleAdmin, sess.Role)
		assert.Equal(t, "upstream-token", sess.Token)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "ems_session", Value: id})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNoCacheHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(NoCacheHeaders())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))
}
