package dto

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// CreateIntentRequest payload. Amount is in the smallest currency unit.
type CreateIntentRequest struct {
	Amount int64 `json:"amount"`
}

// CreateIntentResponse carries the processor's client secret.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest payload for a confirmed charge.
type RecordPaymentRequest struct {
	TransactionID string  `json:"transactionId"`
	PaidAmount    float64 `json:"paidAmount"`
	EmployeeName  string  `json:"employeeName"`
	EmployeeEmail string  `json:"employeeEmail"`
}

// PaymentRecordView is a stored record enriched with the month name and year
// derived from the payment date.
type PaymentRecordView struct {
	ID            string    `json:"_id"`
	TransactionID string    `json:"transactionId"`
	PaidAmount    float64   `json:"paidAmount"`
	EmployeeName  string    `json:"employeeName"`
	EmployeeEmail string    `json:"employeeEmail"`
	PaymentDate   time.Time `json:"paymentDate"`
	Month         string    `json:"month"`
	Year          int       `json:"year"`
}

// PaymentHistoryResponse is one page of history.
type PaymentHistoryResponse struct {
	Payments   []PaymentRecordView `json:"payments"`
	TotalPages int64               `json:"totalPages"`
}

// NewPaymentRecordView maps the domain model.
func NewPaymentRecordView(payment *domain.PaymentRecord) PaymentRecordView {
	return PaymentRecordView{
		ID:            payment.ID,
		TransactionID: payment.TransactionID,
		PaidAmount:    payment.PaidAmount,
		EmployeeName:  payment.EmployeeName,
		EmployeeEmail: payment.EmployeeEmail,
		PaymentDate:   payment.PaymentDate,
		Month:         payment.Month(),
		Year:          payment.Year(),
	}
}
