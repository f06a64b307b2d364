package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ems-gateway/internal/core/domain"
)

// LoginResult is the upstream answer to /api/auth/login
type LoginResult struct {
	Token string          `json:"token"`
	Roles []string        `json:"roles"`
	User  domain.UserInfo `json:"user"`
}

// RegisterInput is the upstream registration payload
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates against the EMS API
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := c.Do(ctx, http.MethodPost, "/api/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account upstream
func (c *Client) Register(ctx context.Context, input *RegisterInput) error {
	return c.Do(ctx, http.MethodPost, "/api/auth/register", "", input, nil)
}

// Me fetches the profile for a token; used for silent revalidation
func (c *Client) Me(ctx context.Context, tok string) (*domain.UserInfo, error) {
	var out domain.UserInfo
	if err := c.Do(ctx, http.MethodGet, "/api/auth/me", tok, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- Employees ----

func (c *Client) ListEmployees(ctx context.Context, tok string) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.Do(ctx, http.MethodGet, "/api/employees", tok, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, tok string, e *domain.Employee) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.Do(ctx, http.MethodPost, "/api/employees", tok, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, tok string, id uint, e *domain.Employee) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/api/employees/%d", id), tok, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, tok string, id uint) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/employees/%d", id), tok, nil, nil)
}

// ---- Departments ----

func (c *Client) ListDepartments(ctx context.Context, tok string) ([]domain.Department, error) {
	var out []domain.Department
	if err := c.Do(ctx, http.MethodGet, "/api/departments", tok, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ---- HR staff ----

// HRStaffInput is the upstream HR create/update payload. Password is
// required on create and optional on update; it is never echoed back.
type HRStaffInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func (c *Client) ListHRs(ctx context.Context, tok string) ([]domain.HRStaff, error) {
	var out []domain.HRStaff
	if err := c.Do(ctx, http.MethodGet, "/api/hrs", tok, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateHR(ctx context.Context, tok string, input *HRStaffInput) (*domain.HRStaff, error) {
	var out domain.HRStaff
	if err := c.Do(ctx, http.MethodPost, "/api/hrs", tok, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHR(ctx context.Context, tok string, id uint, input *HRStaffInput) (*domain.HRStaff, error) {
	var out domain.HRStaff
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/api/hrs/%d", id), tok, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHR(ctx context.Context, tok string, id uint) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/hrs/%d", id), tok, nil, nil)
}

// ---- Attendance ----

func (c *Client) MyAttendance(ctx context.Context, tok string) ([]domain.AttendanceRecord, error) {
	var out []domain.AttendanceRecord
	if err := c.Do(ctx, http.MethodGet, "/api/attendance/me", tok, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAttendance is the HR-wide attendance listing, served under the HR
// prefix upstream, unlike the per-employee /api/attendance routes.
func (c *Client) ListAttendance(ctx context.Context, tok string) ([]domain.AttendanceRecord, error) {
	var out []domain.AttendanceRecord
	if err := c.Do(ctx, http.MethodGet, "/api/hrs/attendance", tok, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkAttendance(ctx context.Context, tok string, employeeID uint, present bool) error {
	path := fmt.Sprintf("/api/attendance/%d?present=%t", employeeID, present)
	return c.Do(ctx, http.MethodPost, path, tok, nil, nil)
}

// ---- Leaves ----

func (c *Client) ListLeaves(ctx context.Context, tok string) ([]domain.LeaveRequest, error) {
	var out []domain.LeaveRequest
	if err := c.Do(ctx, http.MethodGet, "/api/leaves", tok, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateLeave(ctx context.Context, tok string, l *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	if err := c.Do(ctx, http.MethodPost, "/api/leaves", tok, l, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecideLeave proposes a status transition; the upstream is authoritative
// and answers with the record as stored.
func (c *Client) DecideLeave(ctx context.Context, tok string, id uint, status string) (*domain.LeaveRequest, error) {
	path := fmt.Sprintf("/api/leaves/%d/status?status=%s", id, url.QueryEscape(status))
	var out domain.LeaveRequest
	if err := c.Do(ctx, http.MethodPut, path, tok, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- Candidates & recruitments ----

func (c *Client) ListCandidates(ctx context.Context, tok string) ([]domain.Candidate, error) {
	var out []domain.Candidate
	if err := c.Do(ctx, http.MethodGet, "/api/candidates", tok, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetCandidateStatus(ctx context.Context, tok string, id uint, status string) (*domain.Candidate, error) {
	path := fmt.Sprintf("/api/candidates/%d?status=%s", id, url.QueryEscape(status))
	var out domain.Candidate
	if err := c.Do(ctx, http.MethodPatch, path, tok, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClearCandidates(ctx context.Context, tok string) error {
	return c.Do(ctx, http.MethodDelete, "/api/candidates/clear", tok, nil, nil)
}

func (c *Client) ListRecruitments(ctx context.Context, tok string) ([]domain.Recruitment, error) {
	var out []domain.Recruitment
	if err := c.Do(ctx, http.MethodGet, "/api/recruitments", tok, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetRecruitmentStatus(ctx context.Context, tok string, id uint, status string) (*domain.Recruitment, error) {
	path := fmt.Sprintf("/api/recruitments/%d?status=%s", id, url.QueryEscape(status))
	var out domain.Recruitment
	if err := c.Do(ctx, http.MethodPut, path, tok, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
