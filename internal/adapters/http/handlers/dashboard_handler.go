package handlers

import (
	"ems-gateway/internal/adapters/http/middleware"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin landing screen and profile
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// AdminDashboard returns the admin KPIs and chart series
// @Summary Admin dashboard
// @Description KPI cards plus chart series derived from current records
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin [get]
func (h *DashboardHandler) AdminDashboard(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	data, err := h.dashboardService.GetAdminDashboard(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", data)
}

// Profile returns the signed-in admin's profile snapshot
// @Summary Admin profile
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/profile [get]
func (h *DashboardHandler) Profile(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	return response.Success(c, "", fiber.Map{
		"user":       sess.User,
		"role":       sess.Role,
		"signed_in":  sess.CreatedAt,
		"expires_at": sess.ExpiresAt,
	})
}
