package events

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPaymentRecorded  EventType = "payment_recorded"
	EventEmployeeFired    EventType = "employee_fired"
	EventEmployeeVerified EventType = "employee_verified"
	EventRoleChanged      EventType = "role_changed"
	EventSalaryUpdated    EventType = "salary_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	TransactionID string  `json:"transaction_id"`
	PaidAmount    float64 `json:"paid_amount"`
	EmployeeEmail string  `json:"employee_email"`
}

// EmployeeFiredPayload payload.
type EmployeeFiredPayload struct {
	UserID string `json:"user_id"`
}

// EmployeeVerifiedPayload payload.
type EmployeeVerifiedPayload struct {
	UserID   string `json:"user_id"`
	Verified bool   `json:"verified"`
}

// RoleChangedPayload payload.
type RoleChangedPayload struct {
	UserID  string          `json:"user_id"`
	NewRole domain.UserRole `json:"new_role"`
}

// SalaryUpdatedPayload payload.
type SalaryUpdatedPayload struct {
	UserID string  `json:"user_id"`
	Salary float64 `json:"salary"`
}
