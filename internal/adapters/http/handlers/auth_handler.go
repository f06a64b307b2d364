package handlers

import (
	"errors"
	"strings"
	"time"

	"ems-gateway/internal/adapters/http/middleware"
	"ems-gateway/internal/config"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the login/register panel
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginPrompt answers the /login redirect target for API clients
// @Summary Login prompt
// @Description Target of guard redirects; tells the caller to authenticate
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /login [get]
func (h *AuthHandler) LoginPrompt(c *fiber.Ctx) error {
	return response.Success(c, "Authentication required", fiber.Map{
		"login":    "/auth/login",
		"register": "/auth/register",
	})
}

// Login handles user login
// @Summary Login
// @Description Authenticate against the EMS API and open a gateway session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields before contacting the upstream
	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	sess, err := h.authService.Login(c.Context(), &services.LoginInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid username or password")
		case errors.Is(err, services.ErrNoUsableRole):
			return response.Forbidden(c, "Account has no usable role")
		default:
			return relayError(c, err)
		}
	}

	h.setSessionCookie(c, sess.ID, sess.ExpiresAt)

	return response.Success(c, "Login successful", fiber.Map{
		"role": sess.Role,
		"user": sess.User,
	})
}

// Register handles account creation
// @Summary Register
// @Description Create an account through the EMS API
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	err := h.authService.Register(c.Context(), &services.RegisterInput{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     strings.TrimSpace(req.Role),
	})
	if err != nil {
		return relayError(c, err)
	}

	// No session is opened: the new account signs in next
	return response.Created(c, "Account created, please log in", nil)
}

// Logout clears the gateway session
// @Summary Logout
// @Description Erase the session and expire the cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(h.cfg.Cookie.Name); id != "" {
		if err := h.authService.Logout(c.Context(), id); err != nil {
			return relayError(c, err)
		}
	}

	h.clearSessionCookie(c)
	return response.Success(c, "Logged out", nil)
}

// Me returns the current session's profile snapshot
// @Summary Current user
// @Description Session role and profile snapshot
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	if !sess.Valid() {
		return response.Unauthorized(c, "No active session")
	}

	return response.Success(c, "", fiber.Map{
		"role":       sess.Role,
		"user":       sess.User,
		"expires_at": sess.ExpiresAt,
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, id string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    id,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}
