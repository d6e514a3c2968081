package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// PaymentProcessor creates pending charges with an external payment provider.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64) (clientSecret string, err error)
}

// PaymentService records completed salary payments and serves paginated
// payment history.
type PaymentService struct {
	payments   repository.PaymentRepository
	processor  PaymentProcessor
	dispatcher events.Dispatcher
}

// PaymentDependencies encapsulates requirements for the payment service.
type PaymentDependencies struct {
	PaymentRepo repository.PaymentRepository
	Processor   PaymentProcessor
	Dispatcher  events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(deps PaymentDependencies) *PaymentService {
	return &PaymentService{
		payments:   deps.PaymentRepo,
		processor:  deps.Processor,
		dispatcher: deps.Dispatcher,
	}
}

// CreateIntent delegates a pending charge to the processor. Invalid amounts
// never reach the processor.
func (s *PaymentService) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", apperrors.NewValidationError("Invalid amount", nil)
	}
	secret, err := s.processor.CreateIntent(ctx, amount)
	if err != nil {
		return "", apperrors.NewProcessorError("Failed to create PaymentIntent", err)
	}
	return secret, nil
}

// RecordPaymentInput carries the confirmation payload.
type RecordPaymentInput struct {
	TransactionID string
	PaidAmount    float64
	EmployeeName  string
	EmployeeEmail string
}

// Record validates and persists an immutable payment record. The payment date
// is assigned by the store at insertion time. A duplicate transaction id is
// rejected by the storage-layer unique constraint.
func (s *PaymentService) Record(ctx context.Context, input RecordPaymentInput) (*domain.PaymentRecord, error) {
	if strings.TrimSpace(input.TransactionID) == "" ||
		strings.TrimSpace(input.EmployeeName) == "" ||
		strings.TrimSpace(input.EmployeeEmail) == "" {
		return nil, apperrors.NewValidationError("Required fields are missing.", nil)
	}
	if input.PaidAmount <= 0 {
		return nil, apperrors.NewValidationError("paidAmount must be a positive number", nil)
	}

	payment := &domain.PaymentRecord{
		TransactionID: input.TransactionID,
		PaidAmount:    input.PaidAmount,
		EmployeeName:  input.EmployeeName,
		EmployeeEmail: input.EmployeeEmail,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentRecorded,
			Subject:   payment.ID,
			Timestamp: time.Now(),
			Payload: events.PaymentRecordedPayload{
				TransactionID: payment.TransactionID,
				PaidAmount:    payment.PaidAmount,
				EmployeeEmail: payment.EmployeeEmail,
			},
		})
	}
	return payment, nil
}

// HistoryPage is one page of payment history.
type HistoryPage struct {
	Payments   []domain.PaymentRecord
	TotalPages int64
}

// History returns the page of records for the employee email, newest first.
// No matching records is an empty page, not an error.
func (s *PaymentService) History(ctx context.Context, email string, page, limit int) (*HistoryPage, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email is required", nil)
	}
	if page < 0 {
		return nil, apperrors.NewValidationError("page must be non-negative", nil)
	}
	if limit <= 0 {
		return nil, apperrors.NewValidationError("limit must be positive", nil)
	}

	records, err := s.payments.ListByEmail(ctx, email, limit, page*limit)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	count, err := s.payments.CountByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	totalPages := (count + int64(limit) - 1) / int64(limit)
	return &HistoryPage{Payments: records, TotalPages: totalPages}, nil
}
