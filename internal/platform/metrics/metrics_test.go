package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpstream_LabelsMissingResponseAsError(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequests.WithLabelValues("coingecko", "test_op", "error"))

	ObserveUpstream("coingecko", "test_op", 0, 0)

	after := testutil.ToFloat64(upstreamRequests.WithLabelValues("coingecko", "test_op", "error"))
	assert.Equal(t, before+1, after)
}

func TestObserveRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))

	ObserveRequest("GET", "", http.StatusNotFound, 5*time.Millisecond)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	assert.Equal(t, before+1, after)
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveUpstream("paystack", "list_banks", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "billpay_upstream_requests_total"))
}

func TestPrometheusUpstream_RecordsIntoRegistry(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequests.WithLabelValues("paystack", "resolve_account", "422"))

	PrometheusUpstream().ObserveUpstream("paystack", "resolve_account", http.StatusUnprocessableEntity, time.Millisecond)

	after := testutil.ToFloat64(upstreamRequests.WithLabelValues("paystack", "resolve_account", "422"))
	assert.Equal(t, before+1, after)
}

func TestNopUpstream_RecordsNothing(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequests.WithLabelValues("paystack", "nop_op", "200"))

	NopUpstream().ObserveUpstream("paystack", "nop_op", http.StatusOK, time.Millisecond)

	after := testutil.ToFloat64(upstreamRequests.WithLabelValues("paystack", "nop_op", "200"))
	assert.Equal(t, before, after)
}
