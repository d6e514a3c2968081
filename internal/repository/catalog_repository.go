package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// CatalogRepository serves the read-only services and reviews reference data.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.ServiceListing, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type catalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a Postgres-backed implementation.
func NewCatalogRepository(pool *pgxpool.Pool) CatalogRepository {
	return &catalogRepository{pool: pool}
}

func (r *catalogRepository) ListServices(ctx context.Context) ([]domain.ServiceListing, error) {
	const query = `SELECT id, title, description, icon FROM services ORDER BY title`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ServiceListing
	for rows.Next() {
		var listing domain.ServiceListing
		if err := rows.Scan(&listing.ID, &listing.Title, &listing.Description, &listing.Icon); err != nil {
			return nil, err
		}
		result = append(result, listing)
	}
	return result, rows.Err()
}

func (r *catalogRepository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	const query = `SELECT id, reviewer_name, rating, comment FROM reviews ORDER BY reviewer_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.ReviewerName, &review.Rating, &review.Comment); err != nil {
			return nil, err
		}
		result = append(result, review)
	}
	return result, rows.Err()
}
