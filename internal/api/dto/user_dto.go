package dto

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// RegisterUserRequest payload for first registration.
type RegisterUserRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Designation string          `json:"designation"`
	BankAccount string          `json:"bankAccount"`
	PhotoURL    string          `json:"photoURL"`
	Role        domain.UserRole `json:"role"`
	Salary      *float64        `json:"salary"`
}

// SalaryUpdateRequest payload. Salary is a pointer so a missing field is
// distinguishable from zero.
type SalaryUpdateRequest struct {
	Salary *float64 `json:"salary"`
}

// UserResponse is the serialized account.
type UserResponse struct {
	ID          string                `json:"_id"`
	Name        string                `json:"name"`
	Email       string                `json:"email"`
	Designation string                `json:"designation,omitempty"`
	BankAccount string                `json:"bankAccount,omitempty"`
	PhotoURL    string                `json:"photoURL,omitempty"`
	Role        domain.UserRole       `json:"role"`
	Status      domain.EmployeeStatus `json:"status"`
	Verified    bool                  `json:"verified"`
	Payable     bool                  `json:"payable"`
	Salary      *float64              `json:"salary,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// NewUserResponse maps the domain model.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Designation: user.Designation,
		BankAccount: user.BankAccount,
		PhotoURL:    user.PhotoURL,
		Role:        user.Role,
		Status:      user.Status,
		Verified:    user.Verified,
		Payable:     user.Payable,
		Salary:      user.Salary,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// NewUserResponses maps a slice of domain models.
func NewUserResponses(users []domain.User) []UserResponse {
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, NewUserResponse(&users[i]))
	}
	return items
}
