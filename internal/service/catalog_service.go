package service

import (
	"context"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// CatalogService serves the public services and reviews listings.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService builds the service.
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Services returns the service listings.
func (s *CatalogService) Services(ctx context.Context) ([]domain.ServiceListing, error) {
	listings, err := s.catalog.ListServices(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return listings, nil
}

// Reviews returns the review listings.
func (s *CatalogService) Reviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.catalog.ListReviews(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reviews, nil
}
