package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
)

type memPaymentRepo struct {
	records []domain.PaymentRecord
	seq     int
}

func (r *memPaymentRepo) Create(_ context.Context, payment *domain.PaymentRecord) error {
	for _, existing := range r.records {
		if existing.TransactionID == payment.TransactionID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "payments_transaction_id_key"}
		}
	}
	r.seq++
	payment.ID = fmt.Sprintf("pay-%d", r.seq)
	payment.PaymentDate = time.Now()
	r.records = append(r.records, *payment)
	return nil
}

func (r *memPaymentRepo) ListByEmail(_ context.Context, email string, limit, offset int) ([]domain.PaymentRecord, error) {
	var matching []domain.PaymentRecord
	for _, record := range r.records {
		if record.EmployeeEmail == email {
			matching = append(matching, record)
		}
	}
	if offset >= len(matching) {
		return nil, nil
	}
	matching = matching[offset:]
	if len(matching) > limit {
		matching = matching[:limit]
	}
	return matching, nil
}

func (r *memPaymentRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	for _, record := range r.records {
		if record.EmployeeEmail == email {
			count++
		}
	}
	return count, nil
}

type stubProcessor struct {
	calls  int
	secret string
	err    error
}

func (p *stubProcessor) CreateIntent(_ context.Context, _ int64) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.secret, nil
}

func newPaymentService(repo *memPaymentRepo, proc *stubProcessor) *PaymentService {
	return NewPaymentService(PaymentDependencies{PaymentRepo: repo, Processor: proc})
}

func TestCreateIntentRejectsInvalidAmountBeforeProcessor(t *testing.T) {
	proc := &stubProcessor{secret: "cs_test"}
	svc := newPaymentService(&memPaymentRepo{}, proc)
	ctx := context.Background()

	_, err := svc.CreateIntent(ctx, 0)
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	_, err = svc.CreateIntent(ctx, -500)
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	require.Zero(t, proc.calls)
}

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	proc := &stubProcessor{secret: "cs_test"}
	svc := newPaymentService(&memPaymentRepo{}, proc)

	secret, err := svc.CreateIntent(context.Background(), 4200)
	require.NoError(t, err)
	require.Equal(t, "cs_test", secret)
	require.Equal(t, 1, proc.calls)
}

func TestCreateIntentWrapsProcessorFailure(t *testing.T) {
	proc := &stubProcessor{err: errors.New("card network down")}
	svc := newPaymentService(&memPaymentRepo{}, proc)

	_, err := svc.CreateIntent(context.Background(), 4200)
	require.Equal(t, "PROCESSOR_ERROR", errCode(t, err))
}

func TestRecordValidatesRequiredFields(t *testing.T) {
	repo := &memPaymentRepo{}
	svc := newPaymentService(repo, &stubProcessor{})
	ctx := context.Background()

	cases := []RecordPaymentInput{
		{PaidAmount: 100, EmployeeName: "A", EmployeeEmail: "a@x.com"},
		{TransactionID: "tx1", EmployeeName: "A", EmployeeEmail: "a@x.com"},
		{TransactionID: "tx1", PaidAmount: -5, EmployeeName: "A", EmployeeEmail: "a@x.com"},
		{TransactionID: "tx1", PaidAmount: 100, EmployeeEmail: "a@x.com"},
		{TransactionID: "tx1", PaidAmount: 100, EmployeeName: "A"},
	}
	for _, input := range cases {
		_, err := svc.Record(ctx, input)
		require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
	}
	require.Empty(t, repo.records)
}

func TestRecordPersistsWithServerAssignedDate(t *testing.T) {
	repo := &memPaymentRepo{}
	svc := newPaymentService(repo, &stubProcessor{})

	payment, err := svc.Record(context.Background(), RecordPaymentInput{
		TransactionID: "tx1",
		PaidAmount:    1200.50,
		EmployeeName:  "A",
		EmployeeEmail: "a@x.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, payment.ID)
	require.WithinDuration(t, time.Now(), payment.PaymentDate, 5*time.Second)
	require.Len(t, repo.records, 1)
}

func TestRecordRejectsDuplicateTransactionID(t *testing.T) {
	repo := &memPaymentRepo{}
	svc := newPaymentService(repo, &stubProcessor{})
	ctx := context.Background()

	input := RecordPaymentInput{
		TransactionID: "tx1",
		PaidAmount:    100,
		EmployeeName:  "A",
		EmployeeEmail: "a@x.com",
	}
	_, err := svc.Record(ctx, input)
	require.NoError(t, err)

	_, err = svc.Record(ctx, input)
	require.Equal(t, "CONFLICT", errCode(t, err))
	require.Len(t, repo.records, 1)
}

func TestHistoryPagination(t *testing.T) {
	repo := &memPaymentRepo{}
	svc := newPaymentService(repo, &stubProcessor{})
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Record(ctx, RecordPaymentInput{
			TransactionID: fmt.Sprintf("tx-%d", i),
			PaidAmount:    100,
			EmployeeName:  "A",
			EmployeeEmail: "a@x.com",
		})
		require.NoError(t, err)
	}

	page, err := svc.History(ctx, "a@x.com", 0, 5)
	require.NoError(t, err)
	require.Len(t, page.Payments, 5)
	require.EqualValues(t, 2, page.TotalPages)

	page, err = svc.History(ctx, "a@x.com", 1, 5)
	require.NoError(t, err)
	require.Len(t, page.Payments, 2)
	require.EqualValues(t, 2, page.TotalPages)
}

func TestHistoryExactMultipleBoundary(t *testing.T) {
	repo := &memPaymentRepo{}
	svc := newPaymentService(repo, &stubProcessor{})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := svc.Record(ctx, RecordPaymentInput{
			TransactionID: fmt.Sprintf("tx-%d", i),
			PaidAmount:    100,
			EmployeeName:  "A",
			EmployeeEmail: "a@x.com",
		})
		require.NoError(t, err)
	}

	page, err := svc.History(ctx, "a@x.com", 0, 5)
	require.NoError(t, err)
	require.Len(t, page.Payments, 5)
	require.EqualValues(t, 2, page.TotalPages)
}

func TestHistoryEmptyIsNotAnError(t *testing.T) {
	svc := newPaymentService(&memPaymentRepo{}, &stubProcessor{})

	page, err := svc.History(context.Background(), "nobody@x.com", 0, 5)
	require.NoError(t, err)
	require.Empty(t, page.Payments)
	require.EqualValues(t, 0, page.TotalPages)
}

func TestHistoryValidatesQuery(t *testing.T) {
	svc := newPaymentService(&memPaymentRepo{}, &stubProcessor{})
	ctx := context.Background()

	_, err := svc.History(ctx, "", 0, 5)
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	_, err = svc.History(ctx, "a@x.com", -1, 5)
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	_, err = svc.History(ctx, "a@x.com", 0, 0)
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}
