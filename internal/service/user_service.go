package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// UserService coordinates account registration, lookups and the role/status
// mutations HR and admins perform.
type UserService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// UserDependencies encapsulates requirements for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
		dispatcher: deps.Dispatcher,
	}
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// IssueToken signs an identity payload. The payload must carry an email.
func (s *UserService) IssueToken(identity map[string]any) (string, time.Time, error) {
	token, exp, err := s.tokenMgr.Issue(identity)
	if err != nil {
		if errors.Is(err, auth.ErrEmailRequired) {
			return "", time.Time{}, apperrors.NewValidationError("identity email required", nil)
		}
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Name        string
	Email       string
	Designation string
	BankAccount string
	PhotoURL    string
	Role        domain.UserRole
	Salary      *float64
}

// Register creates an account unless the email is already taken. Registering
// an existing email is a no-op reported through the exists flag.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, bool, error) {
	if input.Email == "" {
		return nil, false, apperrors.NewValidationError("email required", nil)
	}
	if input.Role == "" {
		input.Role = domain.RoleEmployee
	}
	if !input.Role.Valid() {
		return nil, false, apperrors.NewValidationError("unknown role", nil)
	}
	if input.Salary != nil && *input.Salary < 0 {
		return nil, false, apperrors.NewValidationError("salary must be non-negative", nil)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, true, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:        input.Name,
		Email:       input.Email,
		Designation: input.Designation,
		BankAccount: input.BankAccount,
		PhotoURL:    input.PhotoURL,
		Role:        input.Role,
		Status:      domain.StatusActive,
		Salary:      input.Salary,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, apperrors.MapError(err)
	}
	return user, false, nil
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// ListPayable returns accounts flagged payable.
func (s *UserService) ListPayable(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListPayable(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// GetByEmail fetches one account by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("User not found")
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// GetByID fetches one account by identifier.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundMessage("Employee not found")
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// SetRole assigns one of the enumerated roles.
func (s *UserService) SetRole(ctx context.Context, id string, role domain.UserRole) error {
	if !role.Valid() {
		return apperrors.NewValidationError("unknown role", nil)
	}
	if err := s.users.SetRole(ctx, id, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("User not found")
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventRoleChanged, id, events.RoleChangedPayload{UserID: id, NewRole: role})
	return nil
}

// SetSalary updates the salary. Negative values are rejected.
func (s *UserService) SetSalary(ctx context.Context, id string, salary float64) error {
	if salary < 0 {
		return apperrors.NewValidationError("salary must be non-negative", nil)
	}
	if err := s.users.SetSalary(ctx, id, salary); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("User not found")
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventSalaryUpdated, id, events.SalaryUpdatedPayload{UserID: id, Salary: salary})
	return nil
}

// Fire marks the account as fired. Idempotent.
func (s *UserService) Fire(ctx context.Context, id string) error {
	if err := s.users.SetStatus(ctx, id, domain.StatusFired); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("User not found")
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeFired, id, events.EmployeeFiredPayload{UserID: id})
	return nil
}

// ToggleVerified flips the verified flag and returns the new value. Two
// consecutive toggles restore the original state.
func (s *UserService) ToggleVerified(ctx context.Context, id string) (bool, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.NewNotFoundMessage("Employee not found")
		}
		return false, apperrors.MapError(err)
	}

	next := !user.Verified
	if err := s.users.SetVerified(ctx, id, next); err != nil {
		return false, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeVerified, id, events.EmployeeVerifiedPayload{UserID: id, Verified: next})
	return next, nil
}

// MarkPayable flags the account as payable. Idempotent.
func (s *UserService) MarkPayable(ctx context.Context, id string) error {
	if err := s.users.SetPayable(ctx, id, true); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundMessage("User not found")
		}
		return apperrors.MapError(err)
	}
	return nil
}

// RoleOf looks up the role held by the account with the given email.
func (s *UserService) RoleOf(ctx context.Context, email string) (domain.UserRole, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundMessage("User not found")
		}
		return "", apperrors.MapError(err)
	}
	return user.Role, nil
}

// IsAdmin reports whether the account with the given email holds the admin
// role. A missing account is not an error; it is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.MapError(err)
	}
	return user.Role == domain.RoleAdmin, nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, subject string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
