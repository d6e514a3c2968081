package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// MessageRepository stores contact-us submissions. Append-only.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	List(ctx context.Context) ([]domain.Message, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository returns a Postgres-backed implementation.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	const query = `
        INSERT INTO messages (name, email, message)
        VALUES ($1,$2,$3)
        RETURNING id, sent_at`

	return r.pool.QueryRow(ctx, query,
		message.Name,
		message.Email,
		message.Message,
	).Scan(&message.ID, &message.SentAt)
}

func (r *messageRepository) List(ctx context.Context) ([]domain.Message, error) {
	const query = `SELECT id, name, email, message, sent_at FROM messages ORDER BY sent_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Message
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Message,
			&message.SentAt,
		); err != nil {
			return nil, err
		}
		result = append(result, message)
	}
	return result, rows.Err()
}
