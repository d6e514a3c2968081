package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/service"
)

// CatalogHandler serves the public services and reviews listings.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// Services handles GET /services.
func (h *CatalogHandler) Services(c *fiber.Ctx) error {
	listings, err := h.catalog.Services(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewServiceListingResponses(listings))
}

// Reviews handles GET /reviews.
func (h *CatalogHandler) Reviews(c *fiber.Ctx) error {
	reviews, err := h.catalog.Reviews(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReviewResponses(reviews))
}
