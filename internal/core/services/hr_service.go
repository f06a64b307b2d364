package services

import (
	"context"
	"errors"
	"strings"

	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/core/analytics"
	"ems-gateway/internal/core/domain"
)

// HR errors
var (
	ErrInvalidLeaveStatus     = errors.New("leave status must be APPROVED or REJECTED")
	ErrInvalidCandidateStatus = errors.New("candidate status must be Pending, Accepted or Rejected")
	ErrInvalidDateRange       = errors.New("end date is before start date")
)

// HRService backs the HR panel (attendance, leaves, recruitment) and the
// admin manage-HR screen
type HRService struct {
	api *upstream.Client
}

// NewHRService creates a new HR service
func NewHRService(api *upstream.Client) *HRService {
	return &HRService{api: api}
}

// ---- HR staff records (admin screen) ----

// HRStaffInput is the manage-HR form payload
type HRStaffInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // required on create, never echoed
}

// Validate performs client-side required-field checks
func (in *HRStaffInput) Validate(forCreate bool) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return ErrMissingField
	}
	if forCreate && in.Password == "" {
		return ErrMissingField
	}
	return nil
}

func (in *HRStaffInput) toUpstream() *upstream.HRStaffInput {
	return &upstream.HRStaffInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
	}
}

// ListStaff fetches HR records plus the credential-presence grouping
func (s *HRService) ListStaff(ctx context.Context, tok string) ([]domain.HRStaff, map[string]int, error) {
	staff, err := s.api.ListHRs(ctx, tok)
	if err != nil {
		return nil, nil, err
	}
	return staff, analytics.HRCredentials(staff), nil
}

// CreateStaff adds an HR record. The password travels upstream once and
// is not retained.
func (s *HRService) CreateStaff(ctx context.Context, tok string, input *HRStaffInput) (*domain.HRStaff, error) {
	if err := input.Validate(true); err != nil {
		return nil, err
	}
	return s.api.CreateHR(ctx, tok, input.toUpstream())
}

// UpdateStaff edits an HR record. The password is included only when the
// form set one; an empty password leaves the upstream credential alone.
func (s *HRService) UpdateStaff(ctx context.Context, tok string, id uint, input *HRStaffInput) (*domain.HRStaff, error) {
	if err := input.Validate(false); err != nil {
		return nil, err
	}
	return s.api.UpdateHR(ctx, tok, id, input.toUpstream())
}

// DeleteStaff removes an HR record
func (s *HRService) DeleteStaff(ctx context.Context, tok string, id uint) error {
	return s.api.DeleteHR(ctx, tok, id)
}

// ---- Attendance ----

// Attendance fetches the employee list and the attendance records the
// marking table needs
func (s *HRService) Attendance(ctx context.Context, tok string) ([]domain.Employee, []domain.AttendanceRecord, error) {
	employees, err := s.api.ListEmployees(ctx, tok)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.api.ListAttendance(ctx, tok)
	if err != nil {
		return nil, nil, err
	}
	return employees, records, nil
}

// MarkAttendance records one employee's presence for today
func (s *HRService) MarkAttendance(ctx context.Context, tok string, employeeID uint, present bool) error {
	return s.api.MarkAttendance(ctx, tok, employeeID, present)
}

// ---- Leaves ----

// Leaves fetches all leave requests plus their status buckets
func (s *HRService) Leaves(ctx context.Context, tok string) ([]domain.LeaveRequest, map[string]int, error) {
	leaves, err := s.api.ListLeaves(ctx, tok)
	if err != nil {
		return nil, nil, err
	}
	return leaves, analytics.LeaveStatuses(leaves), nil
}

// DecideLeave proposes APPROVED or REJECTED for a pending request. The
// upstream stays authoritative: whatever status it answers with is what
// the panel renders.
func (s *HRService) DecideLeave(ctx context.Context, tok string, id uint, status string) (*domain.LeaveRequest, error) {
	if status != domain.LeaveApproved && status != domain.LeaveRejected {
		return nil, ErrInvalidLeaveStatus
	}
	return s.api.DecideLeave(ctx, tok, id, status)
}

// ---- Recruitment ----

// Recruitment fetches candidates with status buckets, plus recruitment
// postings
func (s *HRService) Recruitment(ctx context.Context, tok string) ([]domain.Candidate, map[string]int, []domain.Recruitment, error) {
	candidates, err := s.api.ListCandidates(ctx, tok)
	if err != nil {
		return nil, nil, nil, err
	}
	recruitments, err := s.api.ListRecruitments(ctx, tok)
	if err != nil {
		return nil, nil, nil, err
	}
	return candidates, analytics.CandidateStatuses(candidates), recruitments, nil
}

// SetCandidateStatus updates one candidate's status
func (s *HRService) SetCandidateStatus(ctx context.Context, tok string, id uint, status string) (*domain.Candidate, error) {
	switch status {
	case domain.CandidatePending, domain.CandidateAccepted, domain.CandidateRejected:
	default:
		return nil, ErrInvalidCandidateStatus
	}
	return s.api.SetCandidateStatus(ctx, tok, id, status)
}

// ClearCandidates wipes the candidate list
func (s *HRService) ClearCandidates(ctx context.Context, tok string) error {
	return s.api.ClearCandidates(ctx, tok)
}

// SetRecruitmentStatus updates a recruitment posting's status
func (s *HRService) SetRecruitmentStatus(ctx context.Context, tok string, id uint, status string) (*domain.Recruitment, error) {
	return s.api.SetRecruitmentStatus(ctx, tok, id, status)
}
