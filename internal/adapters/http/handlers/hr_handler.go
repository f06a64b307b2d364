package handlers

import (
	"ems-gateway/internal/adapters/http/middleware"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HRHandler serves the HR panel: attendance marking, leave decisions and
// recruitment management
type HRHandler struct {
	hrService *services.HRService
}

// NewHRHandler creates a new HR panel handler
func NewHRHandler(hrService *services.HRService) *HRHandler {
	return &HRHandler{hrService: hrService}
}

// Attendance returns the employee roster and today's attendance records
// @Summary HR attendance screen
// @Tags HR
// @Produce json
// @Success 200 {object} response.Response
// @Router /hr/attendance [get]
func (h *HRHandler) Attendance(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	employees, records, err := h.hrService.Attendance(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"employees": employees,
		"records":   records,
	})
}

// MarkAttendance records one employee's presence for today
// @Summary Mark attendance
// @Tags HR
// @Produce json
// @Param id path int true "Employee ID"
// @Param present query bool true "Present flag"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /hr/attendance/{id} [post]
func (h *HRHandler) MarkAttendance(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid employee ID")
	}
	present := c.QueryBool("present")

	if err := h.hrService.MarkAttendance(c.Context(), sess.Token, id, present); err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "Attendance recorded", nil)
}

// Leaves returns every leave request plus the per-status buckets
// @Summary HR leave screen
// @Tags HR
// @Produce json
// @Success 200 {object} response.Response
// @Router /hr/leaves [get]
func (h *HRHandler) Leaves(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	leaves, buckets, err := h.hrService.Leaves(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"leaves":  leaves,
		"buckets": buckets,
	})
}

// DecideLeave approves or rejects a pending leave request
// @Summary Decide a leave request
// @Tags HR
// @Produce json
// @Param id path int true "Leave request ID"
// @Param status query string true "APPROVED or REJECTED"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /hr/leaves/{id}/status [put]
func (h *HRHandler) DecideLeave(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid leave request ID")
	}

	leave, err := h.hrService.DecideLeave(c.Context(), sess.Token, id, c.Query("status"))
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "Leave request updated", leave)
}

// Recruitment returns candidates with status buckets and the recruitment
// postings
// @Summary HR recruitment screen
// @Tags HR
// @Produce json
// @Success 200 {object} response.Response
// @Router /hr/recruitment [get]
func (h *HRHandler) Recruitment(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	candidates, buckets, recruitments, err := h.hrService.Recruitment(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", fiber.Map{
		"candidates":   candidates,
		"buckets":      buckets,
		"recruitments": recruitments,
	})
}

// candidateStatusRequest carries a candidate status change
type candidateStatusRequest struct {
	Status string `json:"status"`
}

// SetCandidateStatus updates one candidate's status
// @Summary Update candidate status
// @Tags HR
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param request body candidateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /hr/candidates/{id}/status [patch]
func (h *HRHandler) SetCandidateStatus(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid candidate ID")
	}

	var req candidateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	candidate, err := h.hrService.SetCandidateStatus(c.Context(), sess.Token, id, req.Status)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "Candidate updated", candidate)
}

// ClearCandidates wipes the candidate list
// @Summary Clear all candidates
// @Tags HR
// @Produce json
// @Success 200 {object} response.Response
// @Router /hr/candidates [delete]
func (h *HRHandler) ClearCandidates(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	if err := h.hrService.ClearCandidates(c.Context(), sess.Token); err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "Candidates cleared", nil)
}

// SetRecruitmentStatus updates a recruitment posting's status
// @Summary Update recruitment status
// @Tags HR
// @Accept json
// @Produce json
// @Param id path int true "Recruitment ID"
// @Param request body candidateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /hr/recruitments/{id}/status [put]
func (h *HRHandler) SetRecruitmentStatus(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid recruitment ID")
	}

	var req candidateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rec, err := h.hrService.SetRecruitmentStatus(c.Context(), sess.Token, id, req.Status)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "Recruitment updated", rec)
}
