package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// AuthHandler exposes token issuance.
type AuthHandler struct {
	users *service.UserService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{users: userService}
}

// IssueToken handles POST /jwt. The body is an arbitrary identity payload
// signed as-is; it must carry at least an email.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var identity map[string]any
	if err := c.BodyParser(&identity); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, _, err := h.users.IssueToken(identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}
