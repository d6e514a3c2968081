package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	var result []domain.User
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, nil
}

func (r *memUserRepo) ListPayable(_ context.Context) ([]domain.User, error) {
	var result []domain.User
	for _, user := range r.users {
		if user.Payable {
			result = append(result, *user)
		}
	}
	return result, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) SetRole(_ context.Context, id string, role domain.UserRole) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Role = role
	return nil
}

func (r *memUserRepo) SetStatus(_ context.Context, id string, status domain.EmployeeStatus) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Status = status
	return nil
}

func (r *memUserRepo) SetVerified(_ context.Context, id string, verified bool) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Verified = verified
	return nil
}

func (r *memUserRepo) SetPayable(_ context.Context, id string, payable bool) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Payable = payable
	return nil
}

func (r *memUserRepo) SetSalary(_ context.Context, id string, salary float64) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Salary = &salary
	return nil
}

func newUserService(repo *memUserRepo) *UserService {
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTLMinutes: 60}}
	return NewUserService(cfg, UserDependencies{UserRepo: repo})
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).Code
}

func TestRegisterIsIdempotentByEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	user, exists, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)
	require.False(t, exists)
	require.NotEmpty(t, user.ID)
	require.Equal(t, domain.RoleEmployee, user.Role)
	require.Equal(t, domain.StatusActive, user.Status)

	again, exists, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Name: "A again"})
	require.NoError(t, err)
	require.True(t, exists)
	require.Nil(t, again)
	require.Len(t, repo.users, 1)
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(newMemUserRepo())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Name: "no email"})
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	_, _, err = svc.Register(ctx, RegisterInput{Email: "a@x.com", Role: "boss"})
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	negative := -10.0
	_, _, err = svc.Register(ctx, RegisterInput{Email: "a@x.com", Salary: &negative})
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestToggleVerifiedIsInvolution(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com"})
	require.NoError(t, err)
	require.False(t, user.Verified)

	first, err := svc.ToggleVerified(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, first)

	second, err := svc.ToggleVerified(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, second)
	require.False(t, repo.users[user.ID].Verified)
}

func TestToggleVerifiedMissingUser(t *testing.T) {
	svc := newUserService(newMemUserRepo())

	_, err := svc.ToggleVerified(context.Background(), "missing")
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestSetSalary(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.SetSalary(ctx, user.ID, 4200))
	require.Equal(t, 4200.0, *repo.users[user.ID].Salary)

	err = svc.SetSalary(ctx, user.ID, -1)
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	err = svc.SetSalary(ctx, "missing", 100)
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestSetRole(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.SetRole(ctx, user.ID, domain.RoleHR))
	require.Equal(t, domain.RoleHR, repo.users[user.ID].Role)

	err = svc.SetRole(ctx, user.ID, "janitor")
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	err = svc.SetRole(ctx, "missing", domain.RoleAdmin)
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestFireAndMarkPayable(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Fire(ctx, user.ID))
	require.Equal(t, domain.StatusFired, repo.users[user.ID].Status)

	// firing twice stays fired
	require.NoError(t, svc.Fire(ctx, user.ID))
	require.Equal(t, domain.StatusFired, repo.users[user.ID].Status)

	require.NoError(t, svc.MarkPayable(ctx, user.ID))
	require.True(t, repo.users[user.ID].Payable)
}

func TestRoleOf(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Role: domain.RoleHR})
	require.NoError(t, err)

	role, err := svc.RoleOf(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleHR, role)

	_, err = svc.RoleOf(ctx, "nobody@x.com")
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestIsAdmin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Email: "boss@x.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, RegisterInput{Email: "emp@x.com"})
	require.NoError(t, err)

	admin, err := svc.IsAdmin(ctx, "boss@x.com")
	require.NoError(t, err)
	require.True(t, admin)

	admin, err = svc.IsAdmin(ctx, "emp@x.com")
	require.NoError(t, err)
	require.False(t, admin)

	// missing account is simply not an admin
	admin, err = svc.IsAdmin(ctx, "nobody@x.com")
	require.NoError(t, err)
	require.False(t, admin)
}

func TestIssueTokenMapsMissingEmailToValidation(t *testing.T) {
	svc := newUserService(newMemUserRepo())

	_, _, err := svc.IssueToken(map[string]any{"name": "no email"})
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	token, _, err := svc.IssueToken(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
}
