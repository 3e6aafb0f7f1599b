package paystack_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/naira_billpay/internal/adapters/paystack"
	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/SscSPs/naira_billpay/internal/platform/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const banksBody = `{
  "status": true,
  "message": "Banks retrieved",
  "data": [
    {"id": 9, "name": "Access Bank", "slug": "access-bank", "code": "044", "longcode": "044150149", "active": true, "country": "Nigeria", "currency": "NGN", "type": "nuban"},
    {"id": 21, "name": "Guaranty Trust Bank", "slug": "guaranty-trust-bank", "code": "058", "longcode": "058152036", "active": true, "country": "Nigeria", "currency": "NGN", "type": "nuban"}
  ]
}`

func newClient(t *testing.T, handler http.HandlerFunc) *paystack.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return paystack.NewClient(context.Background(), paystack.Options{
		BaseURL:   srv.URL,
		SecretKey: "sk_test_secret",
		Country:   "nigeria",
		Timeout:   2 * time.Second,
	}, nil)
}

func TestListBanks_Success(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank", r.URL.Path)
		assert.Equal(t, "nigeria", r.URL.Query().Get("country"))
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(banksBody))
	})

	banks, err := client.ListBanks(context.Background())

	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "Access Bank", banks[0].Name)
	assert.Equal(t, "044", banks[0].Code)
	assert.Equal(t, "058152036", banks[1].LongCode)
	assert.True(t, banks[1].Active)
}

func TestListBanks_Non2xx(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	})

	_, err := client.ListBanks(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	var upstreamErr *apperrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Equal(t, "Invalid key", upstreamErr.Message)
	assert.False(t, upstreamErr.Rejected())
}

func TestListBanks_StatusFalse(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": false, "message": "Service unavailable"}`))
	})

	_, err := client.ListBanks(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestResolveAccount_Success(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank/resolve", r.URL.Path)
		assert.Equal(t, "0001234567", r.URL.Query().Get("account_number"))
		assert.Equal(t, "058", r.URL.Query().Get("bank_code"))
		_, _ = w.Write([]byte(`{"status": true, "message": "Account number resolved", "data": {"account_number": "0001234567", "account_name": "DOE JANE LOREN", "bank_id": 21}}`))
	})

	details, err := client.ResolveAccount(context.Background(), "0001234567", "058")

	require.NoError(t, err)
	assert.Equal(t, "DOE JANE LOREN", details.AccountName)
	assert.Equal(t, "0001234567", details.AccountNumber)
	assert.Equal(t, 21, details.BankID)
}

func TestResolveAccount_Rejected(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status": false, "message": "Could not resolve account name. Check parameters or try again."}`))
	})

	_, err := client.ResolveAccount(context.Background(), "0000000000", "058")

	var upstreamErr *apperrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.True(t, upstreamErr.Rejected())
	assert.Contains(t, upstreamErr.Message, "Could not resolve account name")
}

func TestResolveAccount_NonJSONError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := client.ResolveAccount(context.Background(), "0001234567", "058")

	var upstreamErr *apperrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusBadGateway, upstreamErr.StatusCode)
	assert.Equal(t, "<html>bad gateway</html>", upstreamErr.Message)
}

func TestListBanks_OversizedResponse(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": true, "message": "`))
		_, _ = w.Write([]byte(strings.Repeat("a", 5<<20)))
		_, _ = w.Write([]byte(`", "data": []}`))
	})

	_, err := client.ListBanks(context.Background())

	var upstreamErr *apperrors.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, "response too large", upstreamErr.Message)
}

func TestListBanks_ReportsToObserver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(banksBody))
	}))
	t.Cleanup(srv.Close)

	var observed []string
	client := paystack.NewClient(context.Background(), paystack.Options{
		BaseURL:   srv.URL,
		SecretKey: "sk_test_secret",
		Timeout:   2 * time.Second,
		Observer: metrics.UpstreamObserverFunc(func(service, operation string, status int, _ time.Duration) {
			observed = append(observed, fmt.Sprintf("%s/%s/%d", service, operation, status))
		}),
	}, nil)

	_, err := client.ListBanks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"paystack/list_banks/200"}, observed)
}
