package utils

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of fractional digits shown for balances.
const DisplayPrecision = 2

// maxBalanceDecimals bounds the exponent passed to decimal so it fits in int32 comfortably.
const maxBalanceDecimals = 255

var unsignedInteger = regexp.MustCompile(`^[0-9]+$`)

// FormatBalance renders a raw base-unit balance as a grouped fixed-point string.
// balance is a decimal string of arbitrary length so no precision is lost in the
// integer part; only digits beyond DisplayPrecision are rounded (half away from zero).
// Example: FormatBalance("123456789000000", 6) returns "123,456,789.00"
func FormatBalance(balance string, decimals int) (string, error) {
	trimmed := strings.TrimSpace(balance)
	if !unsignedInteger.MatchString(trimmed) {
		return "", fmt.Errorf("%w: balance %q is not a non-negative integer", apperrors.ErrFormat, balance)
	}
	if decimals < 0 || decimals > maxBalanceDecimals {
		return "", fmt.Errorf("%w: decimals must be between 0 and %d, got %d", apperrors.ErrFormat, maxBalanceDecimals, decimals)
	}

	raw, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return "", fmt.Errorf("%w: balance %q could not be parsed", apperrors.ErrFormat, balance)
	}

	fixed := decimal.NewFromBigInt(raw, -int32(decimals)).StringFixed(DisplayPrecision)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return "", fmt.Errorf("%w: unexpected integer part %q", apperrors.ErrFormat, intPart)
	}
	return humanize.BigComma(whole) + "." + fracPart, nil
}
