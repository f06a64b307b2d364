package middleware

import (
	"ems-gateway/internal/config"
	"ems-gateway/internal/core/domain"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/guard"
	"ems-gateway/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

const sessionLocal = "session"

// LoadSession resolves the session cookie into a domain session and
// stores it in request locals. It never rejects: routes that tolerate
// anonymous callers (login page, health) share it with guarded ones.
func LoadSession(sessions *services.SessionService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cfg.Cookie.Name)
		if id != "" {
			if sess, err := sessions.Get(c.Context(), id); err == nil {
				c.Locals(sessionLocal, sess)
			}
		}
		return c.Next()
	}
}

// AccessGuard gates the request path against the loaded session.
// Anything short of a role match is a redirect to /login, not an error
// page. Advisory only: the upstream API re-authorizes every proxied
// call.
func AccessGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFromCtx(c)

		decision := guard.Evaluate(sess, c.Path())
		if !decision.Allow {
			metrics.ObserveGuardRedirect()
			return c.Redirect(decision.Redirect, fiber.StatusFound)
		}

		return c.Next()
	}
}

// SessionFromCtx returns the session loaded by LoadSession, or nil
func SessionFromCtx(c *fiber.Ctx) *domain.Session {
	if sess, ok := c.Locals(sessionLocal).(*domain.Session); ok {
		return sess
	}
	return nil
}

// NoCacheHeaders sets no-store headers; every panel answer is per-user
// and derived fresh
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
