package analytics

import (
	"testing"

	"ems-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func emp(dept string, salary float64) domain.Employee {
	e := domain.Employee{Salary: salary}
	if dept != "" {
		e.Department = &domain.Department{Name: dept}
	}
	return e
}

func TestGroupCountWithFallback(t *testing.T) {
	records := []domain.Employee{emp("Eng", 0), emp("Eng", 0), emp("", 0)}

	got := GroupCount(records, func(e domain.Employee) string { return e.DeptName() })

	assert.Equal(t, map[string]int{"Eng": 2, "Unassigned": 1}, got)
}

func TestGroupAverage(t *testing.T) {
	records := []domain.Employee{emp("Eng", 100), emp("Eng", 200)}

	got := GroupAverage(records,
		func(e domain.Employee) string { return e.DeptName() },
		func(e domain.Employee) float64 { return e.Salary })

	assert.Equal(t, map[string]float64{"Eng": 150}, got)
}

func TestGroupAverageNeverEmitsEmptyGroup(t *testing.T) {
	got := GroupAverage([]domain.Employee{},
		func(e domain.Employee) string { return e.DeptName() },
		func(e domain.Employee) float64 { return e.Salary })
	assert.Empty(t, got)
}

func TestSummaryEmpty(t *testing.T) {
	got := Summary(nil)

	assert.Equal(t, EmployeeSummary{
		Total:               0,
		DistinctDepartments: 0,
		DistinctPositions:   0,
		AverageSalary:       0, // explicit guard, not NaN
	}, got)
}

func TestSummary(t *testing.T) {
	records := []domain.Employee{
		{Position: "Dev", Salary: 100, Department: &domain.Department{Name: "Eng"}},
		{Position: "Dev", Salary: 300, Department: &domain.Department{Name: "Eng"}},
		{Position: "", Salary: 200}, // Unknown position, Unassigned dept
	}

	got := Summary(records)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.DistinctDepartments)
	assert.Equal(t, 2, got.DistinctPositions)
	assert.InDelta(t, 200.0, got.AverageSalary, 1e-9)
}

func TestEmployeesDoesNotMutateInput(t *testing.T) {
	records := []domain.Employee{emp("Eng", 100), emp("", 50)}
	before := make([]domain.Employee, len(records))
	copy(before, records)

	_ = Employees(records)

	assert.Equal(t, before, records)
}

func TestEmployeesDeterministic(t *testing.T) {
	records := []domain.Employee{emp("Eng", 100), emp("Sales", 80), emp("", 60)}
	assert.Equal(t, Employees(records), Employees(records))
}

func TestHRCredentials(t *testing.T) {
	records := []domain.HRStaff{
		{Name: "a", User: &domain.HRUser{Username: "a@x"}},
		{Name: "b"},
		{Name: "c", User: &domain.HRUser{}},
	}

	got := HRCredentials(records)

	assert.Equal(t, map[string]int{HasEmail: 1, NoEmail: 2}, got)
}

func TestLeaveStatuses(t *testing.T) {
	records := []domain.LeaveRequest{
		{Status: domain.LeavePending},
		{Status: domain.LeaveApproved},
		{Status: domain.LeavePending},
	}
	assert.Equal(t, map[string]int{"PENDING": 2, "APPROVED": 1}, LeaveStatuses(records))
}

func TestAttendanceRate(t *testing.T) {
	assert.Equal(t, 0.0, AttendanceRate(nil))

	records := []domain.AttendanceRecord{
		{Present: true}, {Present: true}, {Present: false}, {Present: true},
	}
	assert.InDelta(t, 0.75, AttendanceRate(records), 1e-9)
}
