package domain

import (
	"github.com/shopspring/decimal"
)

// Token is a stablecoin the bill-pay flow can debit.
type Token string

const (
	USDC Token = "USDC"
	USDT Token = "USDT"
)

// TokenDecimals is the base-unit precision shared by every supported token.
const TokenDecimals = 6

// ParseToken maps a caller-supplied symbol onto a supported token.
// Only the exact symbol "USDC" selects USDC. Every other value resolves to
// USDT, including "usdc" and unknown symbols. Adding a token means adding a
// case here and in OracleID.
func ParseToken(symbol string) Token {
	switch Token(symbol) {
	case USDC:
		return USDC
	default:
		return USDT
	}
}

// OracleID returns the CoinGecko asset identifier for the token.
func (t Token) OracleID() string {
	switch t {
	case USDC:
		return "usd-coin"
	case USDT:
		return "tether"
	default:
		return "tether"
	}
}

// Decimals returns the number of fractional digits in the token's base unit.
func (t Token) Decimals() int32 {
	return TokenDecimals
}

// TokenPrice is the fiat price of one whole token unit.
type TokenPrice struct {
	Token    Token           `json:"token"`
	OracleID string          `json:"oracleID"`
	Currency string          `json:"currency"` // e.g. "ngn"
	Price    decimal.Decimal `json:"price"`
}

// TokenAmount is a quantity of a token expressed in its base units.
type TokenAmount struct {
	Token     Token  `json:"token"`
	OracleID  string `json:"oracleID"`
	BaseUnits int64  `json:"baseUnits"`
}
