// Package paystack adapts the Paystack REST API to the PaymentsGateway port.
package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/SscSPs/naira_billpay/internal/core/domain"
	"github.com/SscSPs/naira_billpay/internal/core/ports/gateways"
	"github.com/SscSPs/naira_billpay/internal/platform/metrics"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the Paystack API root.
	DefaultBaseURL = "https://api.paystack.co"

	serviceName = "paystack"

	maxErrorBody = 4096
	// The full bank list is a few hundred KB.
	maxResponseBody = 4 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL   string
	SecretKey string
	Country   string // e.g. "nigeria"
	Timeout   time.Duration
	// Transport overrides the base HTTP transport, mostly for tests.
	Transport http.RoundTripper
	// Observer receives one observation per request. Nil records nothing.
	Observer metrics.UpstreamObserver
}

// Client calls the Paystack bank endpoints with the secret key as a bearer token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	country    string
	logger     *slog.Logger
	observer   metrics.UpstreamObserver
}

// envelope is Paystack's response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewClient builds a Client. The secret key never appears in logs.
func NewClient(ctx context.Context, opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	// oauth2 picks up the base client from the context.
	baseClient := &http.Client{Transport: opts.Transport}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, baseClient)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: opts.SecretKey,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = opts.Timeout

	observer := opts.Observer
	if observer == nil {
		observer = metrics.NopUpstream()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		country:    opts.Country,
		logger:     logger.With(slog.String("gateway", serviceName)),
		observer:   observer,
	}
}

var _ gateways.PaymentsGatewayFacade = (*Client)(nil)

// ListBanks returns the banks available in the configured country.
func (c *Client) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	query := url.Values{}
	if c.country != "" {
		query.Set("country", c.country)
	}

	var banks []domain.Bank
	if err := c.get(ctx, "list_banks", "/bank", query, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// ResolveAccount looks up the account holder for accountNumber at the bank identified by bankCode.
func (c *Client) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.AccountDetails, error) {
	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("bank_code", bankCode)

	var details domain.AccountDetails
	if err := c.get(ctx, "resolve_account", "/bank/resolve", query, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) get(ctx context.Context, operation, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &apperrors.UpstreamError{Service: serviceName, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observer.ObserveUpstream(serviceName, operation, 0, time.Since(start))
		c.logger.Error("Request failed", slog.String("operation", operation), slog.String("error", err.Error()))
		return &apperrors.UpstreamError{Service: serviceName, Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	c.observer.ObserveUpstream(serviceName, operation, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err != nil {
		return &apperrors.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	if len(body) > maxResponseBody {
		c.logger.Warn("Response too large", slog.String("operation", operation), slog.Int("limit", maxResponseBody))
		return &apperrors.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: "response too large"}
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(truncate(body, maxErrorBody)))
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.logger.Warn("Non-2xx response",
			slog.String("operation", operation),
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return &apperrors.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return &apperrors.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: "invalid response body", Err: decodeErr}
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return &apperrors.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: msg}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &apperrors.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: "response contained no data", Err: errors.New("empty data")}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &apperrors.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: "unexpected data shape", Err: fmt.Errorf("decode %s: %w", operation, err)}
	}
	return nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
