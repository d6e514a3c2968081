package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/events"
)

func TestNotificationHandlersCoverAllEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()

	svc := NewNotificationService(dispatcher, zap.New(core), config.NotificationConfig{})
	svc.RegisterHandlers()

	published := []events.EventType{
		events.EventPaymentRecorded,
		events.EventEmployeeFired,
		events.EventEmployeeVerified,
		events.EventRoleChanged,
		events.EventSalaryUpdated,
	}
	for _, eventType := range published {
		err := dispatcher.Publish(context.Background(), events.Event{Type: eventType, Subject: "user-1"})
		require.NoError(t, err)
	}

	require.Equal(t, len(published), logs.Len())
	require.Equal(t, 1, logs.FilterMessage("SalaryUpdated").Len())
	require.Equal(t, 1, logs.FilterMessage("PaymentRecorded").Len())
}
