package dto

import "github.com/spec-kit/employee-service/internal/domain"

// ServiceListingResponse is a public service listing.
type ServiceListingResponse struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// ReviewResponse is a public review.
type ReviewResponse struct {
	ID           string `json:"_id"`
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// NewServiceListingResponses maps service listings.
func NewServiceListingResponses(listings []domain.ServiceListing) []ServiceListingResponse {
	items := make([]ServiceListingResponse, 0, len(listings))
	for _, listing := range listings {
		items = append(items, ServiceListingResponse{
			ID:          listing.ID,
			Title:       listing.Title,
			Description: listing.Description,
			Icon:        listing.Icon,
		})
	}
	return items
}

// NewReviewResponses maps reviews.
func NewReviewResponses(reviews []domain.Review) []ReviewResponse {
	items := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, ReviewResponse{
			ID:           review.ID,
			ReviewerName: review.ReviewerName,
			Rating:       review.Rating,
			Comment:      review.Comment,
		})
	}
	return items
}
