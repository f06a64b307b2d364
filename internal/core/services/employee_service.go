package services

import (
	"context"
	"strings"

	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/core/analytics"
	"ems-gateway/internal/core/domain"
)

// EmployeeService backs the manage-employees screen: CRUD against the
// EMS API plus the derived analytics the charts render
type EmployeeService struct {
	api *upstream.Client
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(api *upstream.Client) *EmployeeService {
	return &EmployeeService{api: api}
}

// EmployeeInput is the form payload for create/update
type EmployeeInput struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	Salary       float64 `json:"salary"`
	HireDate     string  `json:"hireDate"`
	DepartmentID uint    `json:"departmentId"`
}

// Validate performs the client-side required-field checks the form did.
// Failing here never contacts the upstream.
func (in *EmployeeInput) Validate() error {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" {
		return ErrMissingField
	}
	return nil
}

func (in *EmployeeInput) toDomain() *domain.Employee {
	e := &domain.Employee{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Position:  strings.TrimSpace(in.Position),
		Salary:    in.Salary,
		HireDate:  in.HireDate,
	}
	if in.DepartmentID != 0 {
		e.Department = &domain.Department{ID: in.DepartmentID}
	}
	return e
}

// List fetches all employees
func (s *EmployeeService) List(ctx context.Context, tok string) ([]domain.Employee, error) {
	return s.api.ListEmployees(ctx, tok)
}

// ListWithAnalytics fetches employees and derives the chart series in one
// pass, so every screen shares the same aggregation
func (s *EmployeeService) ListWithAnalytics(ctx context.Context, tok string) ([]domain.Employee, analytics.EmployeeAnalytics, error) {
	employees, err := s.api.ListEmployees(ctx, tok)
	if err != nil {
		return nil, analytics.EmployeeAnalytics{}, err
	}
	return employees, analytics.Employees(employees), nil
}

// Create adds an employee
func (s *EmployeeService) Create(ctx context.Context, tok string, input *EmployeeInput) (*domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.api.CreateEmployee(ctx, tok, input.toDomain())
}

// Update edits an employee
func (s *EmployeeService) Update(ctx context.Context, tok string, id uint, input *EmployeeInput) (*domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.api.UpdateEmployee(ctx, tok, id, input.toDomain())
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, tok string, id uint) error {
	return s.api.DeleteEmployee(ctx, tok, id)
}

// Departments fetches the department list for the form dropdown
func (s *EmployeeService) Departments(ctx context.Context, tok string) ([]domain.Department, error) {
	return s.api.ListDepartments(ctx, tok)
}
