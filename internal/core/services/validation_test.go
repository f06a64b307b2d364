package services

import (
	"context"
	"testing"

	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeInputValidate(t *testing.T) {
	ok := EmployeeInput{FirstName: "A", LastName: "B", Email: "a@b"}
	assert.NoError(t, ok.Validate())

	cases := []EmployeeInput{
		{LastName: "B", Email: "a@b"},
		{FirstName: "A", Email: "a@b"},
		{FirstName: "A", LastName: "B"},
		{FirstName: "   ", LastName: "B", Email: "a@b"},
	}
	for i := range cases {
		assert.ErrorIs(t, cases[i].Validate(), ErrMissingField, "case %d", i)
	}
}

func TestLeaveInputValidate(t *testing.T) {
	ok := LeaveInput{StartDate: "2024-01-01", EndDate: "2024-01-03", Reason: "x"}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, (&LeaveInput{EndDate: "2024-01-03", Reason: "x"}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&LeaveInput{StartDate: "2024-01-01", EndDate: "2024-01-03"}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&LeaveInput{StartDate: "01/01/2024", EndDate: "2024-01-03", Reason: "x"}).Validate(), ErrMissingField)
	assert.ErrorIs(t, (&LeaveInput{StartDate: "2024-01-05", EndDate: "2024-01-03", Reason: "x"}).Validate(), ErrInvalidDateRange)
}

func TestHRStaffInputValidate(t *testing.T) {
	create := HRStaffInput{Name: "N", Email: "n@x", Password: "pw"}
	assert.NoError(t, create.Validate(true))

	noPassword := HRStaffInput{Name: "N", Email: "n@x"}
	assert.ErrorIs(t, noPassword.Validate(true), ErrMissingField)
	// password is only required on create
	assert.NoError(t, noPassword.Validate(false))

	assert.ErrorIs(t, (&HRStaffInput{Email: "n@x"}).Validate(false), ErrMissingField)
}

func TestDecideLeaveRejectsOtherStatuses(t *testing.T) {
	svc := NewHRService(upstream.NewWithBaseURL("http://127.0.0.1:1"))

	// invalid statuses never reach the upstream (the client would fail)
	_, err := svc.DecideLeave(context.Background(), "tok", 1, domain.LeavePending)
	assert.ErrorIs(t, err, ErrInvalidLeaveStatus)

	_, err = svc.DecideLeave(context.Background(), "tok", 1, "CANCELLED")
	assert.ErrorIs(t, err, ErrInvalidLeaveStatus)
}

func TestSetCandidateStatusRejectsUnknown(t *testing.T) {
	svc := NewHRService(upstream.NewWithBaseURL("http://127.0.0.1:1"))

	_, err := svc.SetCandidateStatus(context.Background(), "tok", 1, "Maybe")
	assert.ErrorIs(t, err, ErrInvalidCandidateStatus)
}
