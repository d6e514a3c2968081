package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// PaymentsHandler exposes payment intent creation, recording and history.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid amount", nil)
	}

	secret, err := h.payments.CreateIntent(c.Context(), req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(dto.CreateIntentResponse{ClientSecret: secret})
}

// Record handles POST /payments. A body whose fields are mistyped fails the
// JSON decode and is rejected before the service sees it.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid data types.", nil)
	}

	payment, err := h.payments.Record(c.Context(), service.RecordPaymentInput{
		TransactionID: req.TransactionID,
		PaidAmount:    req.PaidAmount,
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPaymentRecordView(payment))
}

// History handles GET /payment-history.
func (h *PaymentsHandler) History(c *fiber.Ctx) error {
	email := c.Query("email")
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", 5)

	result, err := h.payments.History(c.Context(), email, page, limit)
	if err != nil {
		return err
	}

	views := make([]dto.PaymentRecordView, 0, len(result.Payments))
	for i := range result.Payments {
		views = append(views, dto.NewPaymentRecordView(&result.Payments[i]))
	}
	return c.JSON(dto.PaymentHistoryResponse{
		Payments:   views,
		TotalPages: result.TotalPages,
	})
}
