package handlers

import (
	"ems-gateway/internal/adapters/http/middleware"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PortalHandler serves the employee-facing panel
type PortalHandler struct {
	portalService *services.PortalService
}

// NewPortalHandler creates a new employee portal handler
func NewPortalHandler(portalService *services.PortalService) *PortalHandler {
	return &PortalHandler{portalService: portalService}
}

// Dashboard returns the chart series of the employee dashboard
// @Summary Employee dashboard
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee [get]
func (h *PortalHandler) Dashboard(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	charts, err := h.portalService.Charts(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"user":   sess.User,
		"charts": charts,
	})
}

// MyAttendance returns the caller's attendance records and presence rate
// @Summary My attendance
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee/attendance [get]
func (h *PortalHandler) MyAttendance(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	records, rate, err := h.portalService.MyAttendance(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"records":      records,
		"presenceRate": rate,
	})
}

// MyLeaves returns the caller's leave requests bucketed by status
// @Summary My leave requests
// @Tags Employee
// @Produce json
// @Success 200 {object} response.Response
// @Router /employee/leaves [get]
func (h *PortalHandler) MyLeaves(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	leaves, buckets, err := h.portalService.MyLeaves(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"leaves":  leaves,
		"buckets": buckets,
	})
}

// SubmitLeave files a new leave request for the caller
// @Summary Submit a leave request
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body services.LeaveInput true "Leave request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /employee/leaves [post]
func (h *PortalHandler) SubmitLeave(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var input services.LeaveInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	leave, err := h.portalService.SubmitLeave(c.Context(), sess.Token, &input)
	if err != nil {
		return relayError(c, err)
	}

	return response.Created(c, "Leave request submitted", leave)
}
