package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// Actor identifies the authenticated caller for ownership checks. Role is
// RoleEmployee when the token's email no longer resolves to an account.
type Actor struct {
	Email string
	Role  domain.UserRole
}

// CanActOn reports whether the actor may mutate records owned by the email.
func (a Actor) CanActOn(ownerEmail string) bool {
	if a.Email == ownerEmail {
		return true
	}
	return a.Role == domain.RoleHR || a.Role == domain.RoleAdmin
}

// TaskService manages employee work records.
type TaskService struct {
	tasks repository.TaskRepository
}

// NewTaskService builds the service.
func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// TaskInput carries task fields for create and replace.
type TaskInput struct {
	Email       string
	Description string
	WorkedDate  string
}

func (in TaskInput) validate() error {
	if strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.WorkedDate) == "" {
		return apperrors.NewValidationError("Invalid task data.", nil)
	}
	return nil
}

// Create records a new task. Only the owner, HR or an admin may file a task
// under an email.
func (s *TaskService) Create(ctx context.Context, actor Actor, input TaskInput) (*domain.Task, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if !actor.CanActOn(input.Email) {
		return nil, apperrors.NewForbidden("cannot file tasks for another employee")
	}

	task := &domain.Task{
		Email:       input.Email,
		Description: input.Description,
		WorkedDate:  input.WorkedDate,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// Replace overwrites all task fields.
func (s *TaskService) Replace(ctx context.Context, actor Actor, id string, input TaskInput) (*domain.Task, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Task not found")
		}
		return nil, apperrors.MapError(err)
	}
	if !actor.CanActOn(existing.Email) || !actor.CanActOn(input.Email) {
		return nil, apperrors.NewForbidden("cannot modify another employee's task")
	}

	task := &domain.Task{
		ID:          id,
		Email:       input.Email,
		Description: input.Description,
		WorkedDate:  input.WorkedDate,
	}
	if err := s.tasks.Replace(ctx, task); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Task not found")
		}
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// Delete removes a task record.
func (s *TaskService) Delete(ctx context.Context, actor Actor, id string) error {
	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("Task not found")
		}
		return apperrors.MapError(err)
	}
	if !actor.CanActOn(existing.Email) {
		return apperrors.NewForbidden("cannot delete another employee's task")
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("Task not found")
		}
		return apperrors.MapError(err)
	}
	return nil
}

// ListByEmail returns tasks filed under an email.
func (s *TaskService) ListByEmail(ctx context.Context, email string) ([]domain.Task, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("Email query parameter is required.", nil)
	}
	tasks, err := s.tasks.ListByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tasks, nil
}

// ListAll returns every work record.
func (s *TaskService) ListAll(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tasks, nil
}
