package services

import (
	"context"

	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/core/analytics"
	"ems-gateway/internal/core/domain"
)

// DashboardService assembles the admin dashboard view-model. Every series
// is recomputed from the freshly fetched lists on each request; nothing
// is cached or kept incremental.
type DashboardService struct {
	api *upstream.Client
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(api *upstream.Client) *DashboardService {
	return &DashboardService{api: api}
}

// AdminDashboardData is the admin landing screen view-model
type AdminDashboardData struct {
	// KPI cards
	TotalEmployees int `json:"total_employees"`
	TotalHRStaff   int `json:"total_hr_staff"`
	PendingLeaves  int `json:"pending_leaves"`

	// Chart series
	DeptCount     map[string]int     `json:"dept_count"`
	PositionCount map[string]int     `json:"position_count"`
	AvgSalaryDept map[string]float64 `json:"avg_salary_dept"`
	LeaveStatus   map[string]int     `json:"leave_status"`

	Summary analytics.EmployeeSummary `json:"summary"`
}

// GetAdminDashboard fetches the record lists and derives every KPI and
// chart series the admin landing screen shows
func (s *DashboardService) GetAdminDashboard(ctx context.Context, tok string) (*AdminDashboardData, error) {
	employees, err := s.api.ListEmployees(ctx, tok)
	if err != nil {
		return nil, err
	}
	hrs, err := s.api.ListHRs(ctx, tok)
	if err != nil {
		return nil, err
	}
	leaves, err := s.api.ListLeaves(ctx, tok)
	if err != nil {
		return nil, err
	}

	empStats := analytics.Employees(employees)
	leaveStatus := analytics.LeaveStatuses(leaves)

	return &AdminDashboardData{
		TotalEmployees: len(employees),
		TotalHRStaff:   len(hrs),
		PendingLeaves:  leaveStatus[domain.LeavePending],
		DeptCount:      empStats.DeptCount,
		PositionCount:  empStats.PositionCount,
		AvgSalaryDept:  empStats.AvgSalaryDept,
		LeaveStatus:    leaveStatus,
		Summary:        empStats.Summary,
	}, nil
}
