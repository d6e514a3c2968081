package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// UsersHandler exposes account registration, lookups and role/status
// mutations.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Register handles POST /users. Re-registering an existing email is a no-op.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, exists, err := h.users.Register(c.Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		BankAccount: req.BankAccount,
		PhotoURL:    req.PhotoURL,
		Role:        req.Role,
		Salary:      req.Salary,
	})
	if err != nil {
		return err
	}
	if exists {
		return c.JSON(fiber.Map{"message": "user already exists", "insertedId": nil})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"insertedId": user.ID})
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(users))
}

// ListPayable handles GET /users/payable.
func (h *UsersHandler) ListPayable(c *fiber.Ctx) error {
	users, err := h.users.ListPayable(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(users))
}

// GetByEmail handles GET /users/:email.
func (h *UsersHandler) GetByEmail(c *fiber.Ctx) error {
	user, err := h.users.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// GetEmployee handles GET /employees/:id.
func (h *UsersHandler) GetEmployee(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// MakeAdmin handles PATCH /users/admin/:id.
func (h *UsersHandler) MakeAdmin(c *fiber.Ctx) error {
	return h.setRole(c, domain.RoleAdmin)
}

// MakeHR handles PATCH /users/hr/:id.
func (h *UsersHandler) MakeHR(c *fiber.Ctx) error {
	return h.setRole(c, domain.RoleHR)
}

func (h *UsersHandler) setRole(c *fiber.Ctx, role domain.UserRole) error {
	if err := h.users.SetRole(c.Context(), c.Params("id"), role); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "role": role})
}

// UpdateSalary handles PATCH /users/salary/:id.
func (h *UsersHandler) UpdateSalary(c *fiber.Ctx) error {
	var req dto.SalaryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Salary must be a number", nil)
	}
	if req.Salary == nil {
		return apperrors.NewValidationError("Salary is required", nil)
	}

	if err := h.users.SetSalary(c.Context(), c.Params("id"), *req.Salary); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Salary updated successfully"})
}

// Fire handles PATCH /users/fire/:id.
func (h *UsersHandler) Fire(c *fiber.Ctx) error {
	if err := h.users.Fire(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ToggleVerified handles PATCH /users/verify/:id.
func (h *UsersHandler) ToggleVerified(c *fiber.Ctx) error {
	verified, err := h.users.ToggleVerified(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "verified": verified})
}

// MarkPayable handles PATCH /users/payable/:id.
func (h *UsersHandler) MarkPayable(c *fiber.Ctx) error {
	if err := h.users.MarkPayable(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// RoleOf handles GET /users/role/:email.
func (h *UsersHandler) RoleOf(c *fiber.Ctx) error {
	role, err := h.users.RoleOf(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"role": role})
}

// IsAdmin handles GET /users/admin/:email. The auth middleware and self check
// run before this handler.
func (h *UsersHandler) IsAdmin(c *fiber.Ctx) error {
	admin, err := h.users.IsAdmin(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"admin": admin})
}
