package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// TasksHandler exposes work record endpoints.
type TasksHandler struct {
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: taskService}
}

func actorFromContext(c *fiber.Ctx) (service.Actor, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return service.Actor{}, apperrors.NewUnauthorized("authentication required")
	}
	actor := service.Actor{Email: principal.Claims.Email, Role: domain.RoleEmployee}
	if principal.User != nil {
		actor.Role = principal.User.Role
	}
	return actor, nil
}

// List handles GET /tasks?email=.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	tasks, err := h.tasks.ListByEmail(c.Context(), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskResponses(tasks))
}

// ListAll handles GET /allWorkRecords.
func (h *TasksHandler) ListAll(c *fiber.Ctx) error {
	tasks, err := h.tasks.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTaskResponses(tasks))
}

// Create handles POST /tasks.
func (h *TasksHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid task data.", nil)
	}

	task, err := h.tasks.Create(c.Context(), actor, service.TaskInput{
		Email:       req.Email,
		Description: req.Task,
		WorkedDate:  req.Date,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTaskResponse(task))
}

// Replace handles PUT /tasks/:id.
func (h *TasksHandler) Replace(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid task data.", nil)
	}

	if _, err := h.tasks.Replace(c.Context(), actor, c.Params("id"), service.TaskInput{
		Email:       req.Email,
		Description: req.Task,
		WorkedDate:  req.Date,
	}); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Task updated successfully."})
}

// Delete handles DELETE /tasks/:id.
func (h *TasksHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	if err := h.tasks.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
