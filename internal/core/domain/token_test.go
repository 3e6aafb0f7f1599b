package domain_test

import (
	"testing"

	"github.com/SscSPs/naira_billpay/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		symbol string
		want   domain.Token
	}{
		{"USDC", domain.USDC},
		{"usdc", domain.USDT},
		{" USDC ", domain.USDT},
		{"Usdc", domain.USDT},
		{"USDT", domain.USDT},
		{"DAI", domain.USDT},
		{"", domain.USDT},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseToken(tt.symbol))
		})
	}
}

func TestToken_OracleID(t *testing.T) {
	assert.Equal(t, "usd-coin", domain.USDC.OracleID())
	assert.Equal(t, "tether", domain.USDT.OracleID())
	assert.Equal(t, "tether", domain.Token("XYZ").OracleID())
}

func TestToken_Decimals(t *testing.T) {
	for _, tok := range []domain.Token{domain.USDC, domain.USDT} {
		assert.Equal(t, int32(domain.TokenDecimals), tok.Decimals(), string(tok))
	}
}
