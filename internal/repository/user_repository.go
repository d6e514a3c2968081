package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// UserRepository defines persistence access for employee accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	ListPayable(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetRole(ctx context.Context, id string, role domain.UserRole) error
	SetStatus(ctx context.Context, id string, status domain.EmployeeStatus) error
	SetVerified(ctx context.Context, id string, verified bool) error
	SetPayable(ctx context.Context, id string, payable bool) error
	SetSalary(ctx context.Context, id string, salary float64) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, name, email, designation, bank_account, photo_url, role, status, verified, payable, salary, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, designation, bank_account, photo_url, role, status, verified, payable, salary)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Designation,
		user.BankAccount,
		user.PhotoURL,
		user.Role,
		user.Status,
		user.Verified,
		user.Payable,
		user.Salary,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *userRepository) ListPayable(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE payable ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) SetRole(ctx context.Context, id string, role domain.UserRole) error {
	return r.setField(ctx, `UPDATE users SET role=$1, updated_at=NOW() WHERE id=$2`, role, id)
}

func (r *userRepository) SetStatus(ctx context.Context, id string, status domain.EmployeeStatus) error {
	return r.setField(ctx, `UPDATE users SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
}

func (r *userRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.setField(ctx, `UPDATE users SET verified=$1, updated_at=NOW() WHERE id=$2`, verified, id)
}

func (r *userRepository) SetPayable(ctx context.Context, id string, payable bool) error {
	return r.setField(ctx, `UPDATE users SET payable=$1, updated_at=NOW() WHERE id=$2`, payable, id)
}

func (r *userRepository) SetSalary(ctx context.Context, id string, salary float64) error {
	return r.setField(ctx, `UPDATE users SET salary=$1, updated_at=NOW() WHERE id=$2`, salary, id)
}

func (r *userRepository) setField(ctx context.Context, query string, value any, id string) error {
	cmd, err := r.pool.Exec(ctx, query, value, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Designation,
		&user.BankAccount,
		&user.PhotoURL,
		&user.Role,
		&user.Status,
		&user.Verified,
		&user.Payable,
		&user.Salary,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Designation,
			&user.BankAccount,
			&user.PhotoURL,
			&user.Role,
			&user.Status,
			&user.Verified,
			&user.Payable,
			&user.Salary,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}
