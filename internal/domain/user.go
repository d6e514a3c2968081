package domain

import "time"

// UserRole enumerates the roles an account can hold.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleHR       UserRole = "HR"
	RoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the enumerated set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// EmployeeStatus represents lifecycle states for an employee account.
type EmployeeStatus string

const (
	StatusActive EmployeeStatus = "active"
	StatusFired  EmployeeStatus = "fired"
)

// User is the domain model for employees, HR and admins alike.
type User struct {
	ID          string
	Name        string
	Email       string
	Designation string
	BankAccount string
	PhotoURL    string
	Role        UserRole
	Status      EmployeeStatus
	Verified    bool
	Payable     bool
	Salary      *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
