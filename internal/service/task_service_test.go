package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
)

type memTaskRepo struct {
	tasks map[string]*domain.Task
	seq   int
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*domain.Task{}}
}

func (r *memTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.seq++
	task.ID = fmt.Sprintf("task-%d", r.seq)
	task.CreatedAt = time.Now()
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *memTaskRepo) Replace(_ context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *task
	return &copied, nil
}

func (r *memTaskRepo) ListByEmail(_ context.Context, email string) ([]domain.Task, error) {
	var result []domain.Task
	for _, task := range r.tasks {
		if task.Email == email {
			result = append(result, *task)
		}
	}
	return result, nil
}

func (r *memTaskRepo) ListAll(_ context.Context) ([]domain.Task, error) {
	var result []domain.Task
	for _, task := range r.tasks {
		result = append(result, *task)
	}
	return result, nil
}

var (
	owner = Actor{Email: "a@x.com", Role: domain.RoleEmployee}
	hr    = Actor{Email: "hr@x.com", Role: domain.RoleHR}
	other = Actor{Email: "b@x.com", Role: domain.RoleEmployee}
)

func validTask() TaskInput {
	return TaskInput{Email: "a@x.com", Description: "ship the report", WorkedDate: "2026-08-28"}
}

func TestTaskCreateValidation(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	ctx := context.Background()

	cases := []TaskInput{
		{Description: "d", WorkedDate: "2026-08-28"},
		{Email: "a@x.com", WorkedDate: "2026-08-28"},
		{Email: "a@x.com", Description: "d"},
	}
	for _, input := range cases {
		_, err := svc.Create(ctx, owner, input)
		require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
	}
}

func TestTaskOwnership(t *testing.T) {
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)
	ctx := context.Background()

	task, err := svc.Create(ctx, owner, validTask())
	require.NoError(t, err)

	// another employee cannot touch it
	_, err = svc.Create(ctx, other, validTask())
	require.Equal(t, "FORBIDDEN", errCode(t, err))

	_, err = svc.Replace(ctx, other, task.ID, validTask())
	require.Equal(t, "FORBIDDEN", errCode(t, err))

	err = svc.Delete(ctx, other, task.ID)
	require.Equal(t, "FORBIDDEN", errCode(t, err))

	// HR can
	updated := validTask()
	updated.Description = "ship the revised report"
	_, err = svc.Replace(ctx, hr, task.ID, updated)
	require.NoError(t, err)
	require.Equal(t, "ship the revised report", repo.tasks[task.ID].Description)

	require.NoError(t, svc.Delete(ctx, owner, task.ID))
	require.Empty(t, repo.tasks)
}

func TestTaskReplaceMissing(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())

	_, err := svc.Replace(context.Background(), owner, "missing", validTask())
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestTaskListRequiresEmail(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())

	_, err := svc.ListByEmail(context.Background(), "")
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestTaskListByEmailFilters(t *testing.T) {
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, validTask())
	require.NoError(t, err)
	_, err = svc.Create(ctx, hr, TaskInput{Email: "hr@x.com", Description: "review", WorkedDate: "2026-08-27"})
	require.NoError(t, err)

	tasks, err := svc.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "a@x.com", tasks[0].Email)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
