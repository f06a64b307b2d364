package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleEmployee Role = "EMPLOYEE"
)

// ParseRole maps a raw role string to a known Role.
// Anything else is rejected: a session whose role does not parse
// is treated as no valid session at all.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

// Session represents an authenticated browser session held by the gateway.
// It replaces the localStorage token/userData pair of the old SPA:
// the browser only carries the session ID cookie, the upstream bearer
// token never leaves the server.
type Session struct {
	ID        string
	Role      Role
	Token     string // upstream bearer token (decrypted)
	User      UserInfo
	CreatedAt time.Time
	LastSeen  time.Time
	ExpiresAt time.Time
}

// Valid reports whether the session carries both a token and a parseable role.
func (s *Session) Valid() bool {
	if s == nil || s.Token == "" {
		return false
	}
	_, ok := ParseRole(string(s.Role))
	return ok
}

// UserInfo is the profile snapshot returned by the upstream login call
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName,omitempty"`
}

// Employee represents an employee record owned by the upstream API
type Employee struct {
	ID         uint        `json:"id"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Position   string      `json:"position"`
	Salary     float64     `json:"salary"`
	HireDate   string      `json:"hireDate"` // YYYY-MM-DD
	Department *Department `json:"department,omitempty"`
	// Some upstream list endpoints flatten the department name
	DepartmentName string `json:"departmentName,omitempty"`
}

// DeptName returns the department label for grouping, with the
// "Unassigned" fallback used by every chart.
func (e *Employee) DeptName() string {
	if e.Department != nil && e.Department.Name != "" {
		return e.Department.Name
	}
	if e.DepartmentName != "" {
		return e.DepartmentName
	}
	return "Unassigned"
}

// Department represents a department reference
type Department struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// HRStaff represents an HR staff record with its linked credential
type HRStaff struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	User *HRUser `json:"user,omitempty"`
}

// HRUser is the credential linked to an HR record. No password is
// retained after creation.
type HRUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Leave request statuses (server-authoritative, the gateway only proposes)
const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

// LeaveRequest represents a leave request
type LeaveRequest struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	StartDate    string `json:"startDate"` // YYYY-MM-DD
	EndDate      string `json:"endDate"`   // YYYY-MM-DD
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}

// AttendanceRecord represents one employee's presence flag for a calendar day.
// The upstream is assumed to keep at most one record per (employee, day).
type AttendanceRecord struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         string `json:"date"` // YYYY-MM-DD
	Present      bool   `json:"present"`
}

// Candidate statuses as the upstream spells them
const (
	CandidatePending  = "Pending"
	CandidateAccepted = "Accepted"
	CandidateRejected = "Rejected"
)

// Candidate represents a recruitment candidate
type Candidate struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Resume string `json:"resume,omitempty"`
	Status string `json:"status"`
}

// Recruitment represents a recruitment posting tracked by HR
type Recruitment struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Position string `json:"position"`
	Status   string `json:"status"`
}
