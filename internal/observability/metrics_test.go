package observability

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRequestCounters(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/users", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	metrics.RecordRequest("/users", http.MethodGet, http.StatusOK, 7*time.Millisecond)
	metrics.RecordRequest("/users", http.MethodPost, http.StatusCreated, time.Millisecond)

	require.EqualValues(t, 2, metrics.RequestCount("/users", http.MethodGet, http.StatusOK))
	require.EqualValues(t, 1, metrics.RequestCount("/users", http.MethodPost, http.StatusCreated))
	require.Zero(t, metrics.RequestCount("/users", http.MethodGet, http.StatusNotFound))
}

func TestErrorCounters(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordError("/payments", http.MethodPost, "CONFLICT")
	metrics.RecordError("/payments", http.MethodPost, "CONFLICT")

	require.EqualValues(t, 2, metrics.ErrorCount("/payments", http.MethodPost, "CONFLICT"))
	require.Zero(t, metrics.ErrorCount("/payments", http.MethodPost, "VALIDATION_FAILED"))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var metrics *Metrics

	metrics.RecordRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)
	metrics.RecordError("/", http.MethodGet, "INTERNAL_ERROR")
	require.Zero(t, metrics.RequestCount("/", http.MethodGet, http.StatusOK))
	require.Zero(t, metrics.ErrorCount("/", http.MethodGet, "INTERNAL_ERROR"))
}
