package utils_test

import (
	"testing"

	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/SscSPs/naira_billpay/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		name     string
		balance  string
		decimals int
		want     string
	}{
		{"zero", "0", 6, "0.00"},
		{"one token", "1000000", 6, "1.00"},
		{"beyond float safe range", "123456789000000", 6, "123,456,789.00"},
		{"fraction truncated to cents", "1234560000", 6, "1,234.56"},
		{"rounds half away from zero", "1005000", 6, "1.01"},
		{"rounds down", "1004999", 6, "1.00"},
		{"sub-cent balance", "4999", 6, "0.00"},
		{"zero decimals", "1234567", 0, "1,234,567.00"},
		{"eighteen decimals", "2500000000000000000", 18, "2.50"},
		{"huge integer part", "98765432109876543210987654321000000", 6, "98,765,432,109,876,543,210,987,654,321.00"},
		{"surrounding whitespace", " 1000000 ", 6, "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.FormatBalance(tt.balance, tt.decimals)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBalance_Errors(t *testing.T) {
	for _, balance := range []string{"abc", "", "-100", "+100", "1.5", "1e6", "0x10"} {
		t.Run(balance, func(t *testing.T) {
			_, err := utils.FormatBalance(balance, 6)
			assert.ErrorIs(t, err, apperrors.ErrFormat)
		})
	}

	_, err := utils.FormatBalance("100", -1)
	assert.ErrorIs(t, err, apperrors.ErrFormat)
}
