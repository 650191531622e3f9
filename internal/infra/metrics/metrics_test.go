package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsAreIndependentPerInstance(t *testing.T) {
	a := NewWithNamespace("test")
	b := NewWithNamespace("test")

	a.ObserveRefresh(TriggerReactive, OutcomeSuccess)
	a.ObserveRefresh(TriggerReactive, OutcomeSuccess)

	assert.InDelta(t, 2, testutil.ToFloat64(a.RefreshAttempts.WithLabelValues(TriggerReactive, OutcomeSuccess)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.RefreshAttempts.WithLabelValues(TriggerReactive, OutcomeSuccess)), 0)
}

func TestMetrics_BackendTransportErrorLabel(t *testing.T) {
	m := NewWithNamespace("test")

	m.ObserveBackend("list_products", 0, time.Millisecond)
	m.ObserveBackend("list_products", http.StatusOK, time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(m.BackendRequests.WithLabelValues("list_products", "transport_error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.BackendRequests.WithLabelValues("list_products", "200")), 0)
}

func TestMetrics_HandlerServesRegistry(t *testing.T) {
	m := NewWithNamespace("test")
	m.ObserveForcedLogout("refresh_failed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_session_forced_logouts_total{reason="refresh_failed"} 1`)
}
