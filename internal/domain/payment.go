package domain

import "time"

// PaymentRecord captures a completed salary payment. Records are immutable
// once written; month and year views are derived from PaymentDate at read
// time, never stored.
type PaymentRecord struct {
	ID            string
	TransactionID string
	PaidAmount    float64
	EmployeeName  string
	EmployeeEmail string
	PaymentDate   time.Time
}

// Month returns the human-readable month of the payment.
func (p PaymentRecord) Month() string {
	return p.PaymentDate.Month().String()
}

// Year returns the calendar year of the payment.
func (p PaymentRecord) Year() int {
	return p.PaymentDate.Year()
}
