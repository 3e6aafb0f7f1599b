// Package coingecko adapts the CoinGecko simple-price API to the PriceOracle port.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/SscSPs/naira_billpay/internal/core/ports/gateways"
	"github.com/SscSPs/naira_billpay/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public CoinGecko API root.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	apiKeyHeader = "x-cg-demo-api-key"
	serviceName  = "coingecko"
)

// HTTPDoer is the subset of *http.Client the adapter needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client looks up token prices in a single fiat currency.
type Client struct {
	httpClient HTTPDoer
	baseURL    string
	apiKey     string
	currency   string
	logger     *slog.Logger
	observer   metrics.UpstreamObserver
}

// NewClient creates a CoinGecko client quoting prices in currency (e.g. "ngn").
func NewClient(httpClient HTTPDoer, baseURL, apiKey, currency string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		apiKey:     apiKey,
		currency:   strings.ToLower(strings.TrimSpace(currency)),
		logger:     logger.With(slog.String("gateway", serviceName)),
		observer:   metrics.NopUpstream(),
	}
}

// WithObserver makes the client report each request to o.
func (c *Client) WithObserver(o metrics.UpstreamObserver) *Client {
	if o != nil {
		c.observer = o
	}
	return c
}

var _ gateways.PriceOracle = (*Client)(nil)

// Currency returns the fiat currency prices are quoted in.
func (c *Client) Currency() string {
	return c.currency
}

// GetPrice issues one simple/price request for oracleID. It does not retry.
func (c *Client) GetPrice(ctx context.Context, oracleID string) (decimal.Decimal, error) {
	id := strings.TrimSpace(oracleID)
	if id == "" {
		return decimal.Zero, fmt.Errorf("%w: oracle id is required", apperrors.ErrLookup)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/simple/price", nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: building request: %v", apperrors.ErrLookup, err)
	}
	values := url.Values{}
	values.Set("ids", id)
	values.Set("vs_currencies", c.currency)
	req.URL.RawQuery = values.Encode()
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observer.ObserveUpstream(serviceName, "simple_price", 0, time.Since(start))
		c.logger.Warn("Price request failed", slog.String("oracle_id", id), slog.String("error", err.Error()))
		return decimal.Zero, fmt.Errorf("%w: %s request failed: %v", apperrors.ErrLookup, serviceName, err)
	}
	defer func() { _ = resp.Body.Close() }()
	c.observer.ObserveUpstream(serviceName, "simple_price", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("Price request returned non-2xx",
			slog.String("oracle_id", id),
			slog.Int("status", resp.StatusCode),
		)
		return decimal.Zero, fmt.Errorf("%w: %s status %d: %s", apperrors.ErrLookup, serviceName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	var payload map[string]map[string]json.Number
	if err := decoder.Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s decode: %v", apperrors.ErrLookup, serviceName, err)
	}

	entry, ok := payload[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no quote for %s", apperrors.ErrLookup, id)
	}
	raw, ok := entry[c.currency]
	if !ok || raw.String() == "" {
		return decimal.Zero, fmt.Errorf("%w: no %s price for %s", apperrors.ErrLookup, c.currency, id)
	}

	price, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid price %q for %s: %v", apperrors.ErrLookup, raw.String(), id, err)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: non-positive price %s for %s", apperrors.ErrLookup, price, id)
	}

	c.logger.Debug("Price fetched", slog.String("oracle_id", id), slog.String("price", price.String()))
	return price, nil
}
