package dto

import (
	"github.com/SscSPs/naira_billpay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TokenPriceResponse is the data of GET /api/prices/:token.
type TokenPriceResponse struct {
	Token    domain.Token    `json:"token"`
	OracleID string          `json:"oracleID"`
	Currency string          `json:"currency"`
	Price    decimal.Decimal `json:"price"`
}

// ToTokenPriceResponse converts a domain.TokenPrice to TokenPriceResponse DTO
func ToTokenPriceResponse(p *domain.TokenPrice) TokenPriceResponse {
	return TokenPriceResponse{
		Token:    p.Token,
		OracleID: p.OracleID,
		Currency: p.Currency,
		Price:    p.Price,
	}
}

// QuoteRequest is the body of POST /api/quote.
type QuoteRequest struct {
	FiatAmount *decimal.Decimal `json:"fiatAmount" binding:"required"`
	Token      string           `json:"token" binding:"required"`
}

// QuoteResponse describes how much token a bill will debit.
type QuoteResponse struct {
	Token       domain.Token    `json:"token"`
	OracleID    string          `json:"oracleID"`
	Currency    string          `json:"currency"`
	FiatAmount  decimal.Decimal `json:"fiatAmount"`
	TokenPrice  decimal.Decimal `json:"tokenPrice"`
	BaseUnits   int64           `json:"baseUnits"`
	TokenAmount string          `json:"tokenAmount"` // BaseUnits formatted for display
}

// FormatBalanceQuery is the query of GET /api/balances/format.
type FormatBalanceQuery struct {
	Balance  string `form:"balance" binding:"required"`
	Decimals *int   `form:"decimals"`
}

// FormatBalanceResponse is the data of GET /api/balances/format.
type FormatBalanceResponse struct {
	Balance   string `json:"balance"`
	Decimals  int    `json:"decimals"`
	Formatted string `json:"formatted"`
}
