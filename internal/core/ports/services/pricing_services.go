package services

import (
	"context"

	"github.com/SscSPs/naira_billpay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TokenPriceReaderSvc defines price lookups.
type TokenPriceReaderSvc interface {
	// GetTokenPrice returns the current fiat price of the token named by symbol.
	GetTokenPrice(ctx context.Context, symbol string) (*domain.TokenPrice, error)
}

// BillQuoterSvc converts fiat bills into token debits.
type BillQuoterSvc interface {
	// QuoteBill looks up the token price and converts fiatAmount into token base units.
	QuoteBill(ctx context.Context, fiatAmount decimal.Decimal, symbol string) (*domain.TokenPrice, *domain.TokenAmount, error)
}

// BalanceFormatterSvc renders raw on-chain balances.
type BalanceFormatterSvc interface {
	FormatBalance(balance string, decimals int) (string, error)
}

// PricingSvcFacade combines all pricing-related service interfaces
type PricingSvcFacade interface {
	TokenPriceReaderSvc
	BillQuoterSvc
	BalanceFormatterSvc
}
