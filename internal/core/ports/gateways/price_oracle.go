package gateways

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceOracle fetches token prices quoted in a fixed fiat currency.
type PriceOracle interface {
	// GetPrice returns the fiat price of one unit of the asset identified by oracleID.
	// Failures wrap apperrors.ErrLookup.
	GetPrice(ctx context.Context, oracleID string) (decimal.Decimal, error)

	// Currency returns the fiat currency prices are quoted in, e.g. "ngn".
	Currency() string
}
