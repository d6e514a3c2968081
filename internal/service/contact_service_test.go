package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
)

type memMessageRepo struct {
	messages []domain.Message
	seq      int
}

func (r *memMessageRepo) Create(_ context.Context, message *domain.Message) error {
	r.seq++
	message.ID = fmt.Sprintf("msg-%d", r.seq)
	message.SentAt = time.Now()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *memMessageRepo) List(_ context.Context) ([]domain.Message, error) {
	return append([]domain.Message{}, r.messages...), nil
}

func TestSubmitStoresMessage(t *testing.T) {
	repo := &memMessageRepo{}
	svc := NewContactService(repo)

	message, err := svc.Submit(context.Background(), "A", "a@x.com", "hello")
	require.NoError(t, err)
	require.NotEmpty(t, message.ID)
	require.False(t, message.SentAt.IsZero())
	require.Len(t, repo.messages, 1)
}

func TestSubmitRequiresAllFields(t *testing.T) {
	repo := &memMessageRepo{}
	svc := NewContactService(repo)

	cases := [][3]string{
		{"", "a@x.com", "hello"},
		{"A", "", "hello"},
		{"A", "a@x.com", "  "},
	}
	for _, c := range cases {
		_, err := svc.Submit(context.Background(), c[0], c[1], c[2])
		require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
	}
	require.Empty(t, repo.messages)
}

func TestContactListReturnsStored(t *testing.T) {
	repo := &memMessageRepo{}
	svc := NewContactService(repo)

	_, err := svc.Submit(context.Background(), "A", "a@x.com", "first")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "B", "b@x.com", "second")
	require.NoError(t, err)

	messages, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)
}
