package dto

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// ContactRequest payload for the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MessageResponse is the serialized contact message.
type MessageResponse struct {
	ID      string    `json:"_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// NewMessageResponse maps the domain model.
func NewMessageResponse(message *domain.Message) MessageResponse {
	return MessageResponse{
		ID:      message.ID,
		Name:    message.Name,
		Email:   message.Email,
		Message: message.Message,
		Date:    message.SentAt,
	}
}

// NewMessageResponses maps a slice of domain models.
func NewMessageResponses(messages []domain.Message) []MessageResponse {
	items := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, NewMessageResponse(&messages[i]))
	}
	return items
}
