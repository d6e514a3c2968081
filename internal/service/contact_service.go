package service

import (
	"context"
	"strings"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// ContactService stores contact-us submissions.
type ContactService struct {
	messages repository.MessageRepository
}

// NewContactService builds the service.
func NewContactService(messages repository.MessageRepository) *ContactService {
	return &ContactService{messages: messages}
}

// Submit appends a message. The sent date is assigned by the store.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.Message, error) {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(message) == "" {
		return nil, apperrors.NewValidationError("name, email and message are required", nil)
	}

	record := &domain.Message{Name: name, Email: email, Message: message}
	if err := s.messages.Create(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// List returns all stored messages.
func (s *ContactService) List(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return messages, nil
}
