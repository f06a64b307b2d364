package handlers

import (
	"ems-gateway/internal/adapters/http/middleware"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/pagination"
	"ems-gateway/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler serves the admin manage-employees screen
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List returns the employee table plus its analytics
// @Summary List employees
// @Description Employee records with the derived chart series
// @Tags Admin
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /admin/manageemployees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	employees, stats, err := h.employeeService.ListWithAnalytics(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	// analytics always cover the full list; only the table is paged
	params := pagination.GetParams(c)
	page := pagination.Slice(employees, params)

	return response.Success(c, "", fiber.Map{
		"employees": page,
		"meta":      pagination.GetMeta(params, int64(len(employees))),
		"analytics": stats,
	})
}

// Create adds an employee
// @Summary Create employee
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body services.EmployeeInput true "Employee form"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/manageemployees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	var input services.EmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.employeeService.Create(c.Context(), sess.Token, &input)
	if err != nil {
		return relayError(c, err)
	}

	return response.Created(c, "Employee created", created)
}

// Update edits an employee
// @Summary Update employee
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param body body services.EmployeeInput true "Employee form"
// @Success 200 {object} response.Response
// @Router /admin/manageemployees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid employee ID")
	}

	var input services.EmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.employeeService.Update(c.Context(), sess.Token, id, &input)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "Employee updated", updated)
}

// Delete removes an employee
// @Summary Delete employee
// @Tags Admin
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Response
// @Router /admin/manageemployees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	id, err := paramID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid employee ID")
	}

	if err := h.employeeService.Delete(c.Context(), sess.Token, id); err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "Employee deleted", nil)
}

// Departments returns the department dropdown options
// @Summary List departments
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/departments [get]
func (h *EmployeeHandler) Departments(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	departments, err := h.employeeService.Departments(c.Context(), sess.Token)
	if err != nil {
		return relayError(c, err)
	}

	return response.Success(c, "", departments)
}
