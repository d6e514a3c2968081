package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// PaymentRepository encapsulates payment record persistence. Records are
// insert-only; there is no update or delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.PaymentRecord) error
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]domain.PaymentRecord, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.PaymentRecord) error {
	const query = `
        INSERT INTO payments (transaction_id, paid_amount, employee_name, employee_email)
        VALUES ($1,$2,$3,$4)
        RETURNING id, payment_date`

	return r.pool.QueryRow(ctx, query,
		payment.TransactionID,
		payment.PaidAmount,
		payment.EmployeeName,
		payment.EmployeeEmail,
	).Scan(&payment.ID, &payment.PaymentDate)
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string, limit, offset int) ([]domain.PaymentRecord, error) {
	const query = `
        SELECT id, transaction_id, paid_amount, employee_name, employee_email, payment_date
        FROM payments WHERE employee_email=$1
        ORDER BY payment_date DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, email, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	const query = `SELECT COUNT(*) FROM payments WHERE employee_email=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, email).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanPayments(rows pgx.Rows) ([]domain.PaymentRecord, error) {
	var result []domain.PaymentRecord
	for rows.Next() {
		var payment domain.PaymentRecord
		if err := rows.Scan(
			&payment.ID,
			&payment.TransactionID,
			&payment.PaidAmount,
			&payment.EmployeeName,
			&payment.EmployeeEmail,
			&payment.PaymentDate,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}
