package coingecko_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/naira_billpay/internal/adapters/coingecko"
	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/SscSPs/naira_billpay/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetPrice_Success(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"usd-coin":{"ngn":1598.42}}`, func(r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "usd-coin", r.URL.Query().Get("ids"))
		assert.Equal(t, "ngn", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "demo-key", r.Header.Get("x-cg-demo-api-key"))
	})

	client := coingecko.NewClient(srv.Client(), srv.URL, "demo-key", "NGN", nil)
	price, err := client.GetPrice(context.Background(), "usd-coin")

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1598.42").Equal(price), price.String())
	assert.Equal(t, "ngn", client.Currency())
}

func TestGetPrice_OmitsAPIKeyHeaderWhenUnset(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"tether":{"ngn":1600}}`, func(r *http.Request) {
		assert.Empty(t, r.Header.Get("x-cg-demo-api-key"))
	})

	client := coingecko.NewClient(srv.Client(), srv.URL+"/", "", "ngn", nil)
	price, err := client.GetPrice(context.Background(), "tether")

	require.NoError(t, err)
	assert.Equal(t, "1600", price.String())
}

func TestGetPrice_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non-2xx", http.StatusTooManyRequests, `{"status":{"error_code":429}}`},
		{"server error", http.StatusInternalServerError, `oops`},
		{"missing id", http.StatusOK, `{}`},
		{"missing currency", http.StatusOK, `{"tether":{"usd":1}}`},
		{"zero price", http.StatusOK, `{"tether":{"ngn":0}}`},
		{"malformed json", http.StatusOK, `{"tether":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body, nil)
			client := coingecko.NewClient(srv.Client(), srv.URL, "", "ngn", nil)

			_, err := client.GetPrice(context.Background(), "tether")
			assert.ErrorIs(t, err, apperrors.ErrLookup)
		})
	}
}

func TestGetPrice_NetworkError(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`, nil)
	url := srv.URL
	srv.Close()

	client := coingecko.NewClient(nil, url, "", "ngn", nil)
	_, err := client.GetPrice(context.Background(), "tether")
	assert.ErrorIs(t, err, apperrors.ErrLookup)
}

func TestGetPrice_EmptyID(t *testing.T) {
	client := coingecko.NewClient(nil, "", "", "ngn", nil)
	_, err := client.GetPrice(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrLookup)
}

func TestGetPrice_ReportsToObserver(t *testing.T) {
	srv := newServer(t, http.StatusTooManyRequests, `{"status":{"error_code":429}}`, nil)

	var statuses []int
	client := coingecko.NewClient(srv.Client(), srv.URL, "", "ngn", nil).
		WithObserver(metrics.UpstreamObserverFunc(func(service, operation string, status int, _ time.Duration) {
			assert.Equal(t, "coingecko", service)
			assert.Equal(t, "simple_price", operation)
			statuses = append(statuses, status)
		}))

	_, err := client.GetPrice(context.Background(), "tether")

	assert.ErrorIs(t, err, apperrors.ErrLookup)
	assert.Equal(t, []int{http.StatusTooManyRequests}, statuses)
}

func TestGetPrice_NetworkErrorObservedAsZeroStatus(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{}`, nil)
	url := srv.URL
	srv.Close()

	var statuses []int
	client := coingecko.NewClient(nil, url, "", "ngn", nil).
		WithObserver(metrics.UpstreamObserverFunc(func(_, _ string, status int, _ time.Duration) {
			statuses = append(statuses, status)
		}))

	_, err := client.GetPrice(context.Background(), "tether")

	assert.ErrorIs(t, err, apperrors.ErrLookup)
	assert.Equal(t, []int{0}, statuses)
}
