package handlers

import (
	"ems-gateway/internal/adapters/http/middleware"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HRStaffHandler serves the admin manage-HR screen
type HRStaffHandler struct {
	hrService *services.HRService
}

// NewHRStaffHandler creates a new HR staff handler
func NewHRStaffHandler(hrService *services.HRService) *HRStaffHandler {
	return &HRStaffHandler{hrService: hrService}
}

// List returns the HR records with the credential-presence grouping
// @Summary List HR staff
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/managehr [get]
func (h *HRStaffHandler) List(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	staff, credentials, err := h.hrService.ListStaff(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"hrs":         staff,
		"credentials": credentials,
	})
}

// Create adds an HR record
// @Summary Create HR staff
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body services.HRStaffInput true "HR form"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/managehr [post]
func (h *HRStaffHandler) Create(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var input services.HRStaffInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.hrService.CreateStaff(c.Context(), sess.Token, &input)
	if err != nil {
		return relayError(c, err)
	}

	return response.Created(c, "HR staff created", created)
}

// Update edits an HR record
// @Summary Update HR staff
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "HR ID"
// @Param body body services.HRStaffInput true "HR form"
// @Success 200 {object} response.Response
// @Router /admin/managehr/{id} [put]
func (h *HRStaffHandler) Update(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid HR ID")
	}

	var input services.HRStaffInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.hrService.UpdateStaff(c.Context(), sess.Token, id, &input)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "HR staff updated", updated)
}

// Delete removes an HR record
// @Summary Delete HR staff
// @Tags Admin
// @Produce json
// @Param id path int true "HR ID"
// @Success 200 {object} response.Response
// @Router /admin/managehr/{id} [delete]
func (h *HRStaffHandler) Delete(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid HR ID")
	}

	if err := h.hrService.DeleteStaff(c.Context(), sess.Token, id); err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "HR staff deleted", nil)
}
