package analytics

import "ems-gateway/internal/core/domain"

// Fallback labels for records with absent key values
const (
	UnassignedDept  = "Unassigned"
	UnknownPosition = "Unknown"
	HasEmail        = "Has Email"
	NoEmail         = "No Email"
)

// EmployeeSummary is the headline stats card of the manage-employees screen
type EmployeeSummary struct {
	Total               int     `json:"total"`
	DistinctDepartments int     `json:"distinctDepartments"`
	DistinctPositions   int     `json:"distinctPositions"`
	AverageSalary       float64 `json:"averageSalary"`
}

// EmployeeAnalytics bundles the chart series derived from one employee list
type EmployeeAnalytics struct {
	DeptCount     map[string]int     `json:"deptCount"`
	PositionCount map[string]int     `json:"positionCount"`
	AvgSalaryDept map[string]float64 `json:"avgSalaryDept"`
	Summary       EmployeeSummary    `json:"summary"`
}

func employeePosition(e domain.Employee) string {
	if e.Position == "" {
		return UnknownPosition
	}
	return e.Position
}

func employeeDept(e domain.Employee) string {
	return e.DeptName()
}

func employeeSalary(e domain.Employee) float64 {
	return e.Salary
}

// Employees derives every chart series the employee screens need from one
// fetched list.
func Employees(records []domain.Employee) EmployeeAnalytics {
	return EmployeeAnalytics{
		DeptCount:     GroupCount(records, employeeDept),
		PositionCount: GroupCount(records, employeePosition),
		AvgSalaryDept: GroupAverage(records, employeeDept, employeeSalary),
		Summary:       Summary(records),
	}
}

// Summary computes the headline stats. AverageSalary is 0 for an empty
// list, never NaN.
func Summary(records []domain.Employee) EmployeeSummary {
	return EmployeeSummary{
		Total:               len(records),
		DistinctDepartments: Distinct(records, employeeDept),
		DistinctPositions:   Distinct(records, employeePosition),
		AverageSalary:       Average(records, employeeSalary),
	}
}

// HRCredentials groups HR staff by whether a login credential is linked,
// the "Has Email" / "No Email" pie of the manage-HR screen.
func HRCredentials(records []domain.HRStaff) map[string]int {
	return GroupCount(records, func(h domain.HRStaff) string {
		if h.User != nil && h.User.Username != "" {
			return HasEmail
		}
		return NoEmail
	})
}

// LeaveStatuses counts leave requests per status bucket
func LeaveStatuses(records []domain.LeaveRequest) map[string]int {
	return GroupCount(records, func(l domain.LeaveRequest) string { return l.Status })
}

// CandidateStatuses counts candidates per status bucket
func CandidateStatuses(records []domain.Candidate) map[string]int {
	return GroupCount(records, func(c domain.Candidate) string { return c.Status })
}

// AttendanceRate returns the fraction of records marked present,
// 0 for an empty list.
func AttendanceRate(records []domain.AttendanceRecord) float64 {
	return Average(records, func(a domain.AttendanceRecord) float64 {
		if a.Present {
			return 1
		}
		return 0
	})
}
