package utils

import (
	"fmt"
	"math"

	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/SscSPs/naira_billpay/internal/core/domain"
	"github.com/shopspring/decimal"
)

// baseUnitScale is 10^6. It is fixed for every supported token and is not looked up per symbol.
var baseUnitScale = decimal.New(1, domain.TokenDecimals)

var maxBaseUnits = decimal.NewFromInt(math.MaxInt64)

// ConvertFiatToToken computes how many token base units cover fiatAmount at tokenPrice,
// i.e. round(fiatAmount / tokenPrice * 10^6). The symbol only selects the oracle identity;
// the arithmetic is identical for every token.
func ConvertFiatToToken(fiatAmount decimal.Decimal, symbol string, tokenPrice decimal.Decimal) (domain.TokenAmount, error) {
	token := domain.ParseToken(symbol)

	if tokenPrice.IsZero() {
		return domain.TokenAmount{}, fmt.Errorf("%w: token price is zero", apperrors.ErrConversion)
	}
	if tokenPrice.IsNegative() {
		return domain.TokenAmount{}, fmt.Errorf("%w: token price %s is negative", apperrors.ErrConversion, tokenPrice)
	}
	if fiatAmount.IsNegative() {
		return domain.TokenAmount{}, fmt.Errorf("%w: fiat amount %s is negative", apperrors.ErrConversion, fiatAmount)
	}

	// Scale before dividing so the single rounding step happens on the final value.
	units := fiatAmount.Mul(baseUnitScale).DivRound(tokenPrice, 0)
	if units.GreaterThan(maxBaseUnits) {
		return domain.TokenAmount{}, fmt.Errorf("%w: %s base units overflows int64", apperrors.ErrConversion, units)
	}

	return domain.TokenAmount{
		Token:     token,
		OracleID:  token.OracleID(),
		BaseUnits: units.IntPart(),
	}, nil
}

// ConvertFiatFloatToToken is ConvertFiatToToken for float inputs, such as a price
// decoded straight from the oracle. NaN and infinities are rejected.
func ConvertFiatFloatToToken(fiatAmount float64, symbol string, tokenPrice float64) (domain.TokenAmount, error) {
	if !isFinite(fiatAmount) || !isFinite(tokenPrice) {
		return domain.TokenAmount{}, fmt.Errorf("%w: non-finite input (fiat=%v, price=%v)", apperrors.ErrConversion, fiatAmount, tokenPrice)
	}
	return ConvertFiatToToken(decimal.NewFromFloat(fiatAmount), symbol, decimal.NewFromFloat(tokenPrice))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
