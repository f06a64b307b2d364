package services

import (
	"context"
	"strings"
	"time"

	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/core/analytics"
	"ems-gateway/internal/core/domain"
)

// PortalService backs the employee-facing panel: own attendance, leave
// requests, and the charts of the employee dashboard
type PortalService struct {
	api *upstream.Client
}

// NewPortalService creates a new portal service
func NewPortalService(api *upstream.Client) *PortalService {
	return &PortalService{api: api}
}

// LeaveInput is the leave form payload
type LeaveInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// Validate performs the form's client-side checks before anything is
// sent upstream
func (in *LeaveInput) Validate() error {
	if in.StartDate == "" || in.EndDate == "" || strings.TrimSpace(in.Reason) == "" {
		return ErrMissingField
	}
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return ErrMissingField
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return ErrMissingField
	}
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// MyAttendance fetches the caller's attendance records plus the presence
// rate for the header card
func (s *PortalService) MyAttendance(ctx context.Context, tok string) ([]domain.AttendanceRecord, float64, error) {
	records, err := s.api.MyAttendance(ctx, tok)
	if err != nil {
		return nil, 0, err
	}
	return records, analytics.AttendanceRate(records), nil
}

// SubmitLeave files a new leave request. The upstream answers with the
// stored record, normally status PENDING.
func (s *PortalService) SubmitLeave(ctx context.Context, tok string, input *LeaveInput) (*domain.LeaveRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.api.CreateLeave(ctx, tok, &domain.LeaveRequest{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    strings.TrimSpace(input.Reason),
	})
}

// MyLeaves fetches the caller's leave requests bucketed by status, so the
// panel renders each record under its current styling
func (s *PortalService) MyLeaves(ctx context.Context, tok string) ([]domain.LeaveRequest, map[string]int, error) {
	leaves, err := s.api.ListLeaves(ctx, tok)
	if err != nil {
		return nil, nil, err
	}
	return leaves, analytics.LeaveStatuses(leaves), nil
}

// Charts derives the employee-dashboard chart series from the employee
// list (salary per head, averages and headcount per department)
func (s *PortalService) Charts(ctx context.Context, tok string) (analytics.EmployeeAnalytics, error) {
	employees, err := s.api.ListEmployees(ctx, tok)
	if err != nil {
		return analytics.EmployeeAnalytics{}, err
	}
	return analytics.Employees(employees), nil
}
