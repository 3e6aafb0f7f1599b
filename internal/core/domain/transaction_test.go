package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/naira_billpay/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_IsValid(t *testing.T) {
	assert.True(t, domain.StatusSuccessful.IsValid())
	assert.True(t, domain.StatusPending.IsValid())
	assert.True(t, domain.StatusFailed.IsValid())
	assert.False(t, domain.TransactionStatus("refunded").IsValid())
	assert.False(t, domain.TransactionStatus("").IsValid())
}

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()

	valid := domain.Transaction{
		TransactionID: "0xabc",
		Recipient:     "ADA LOVELACE",
		AccountNumber: "0123456789",
		BankCode:      "058",
		BankName:      "Guaranty Trust Bank",
		FiatAmount:    decimal.NewFromInt(5000),
		TokenAmount:   decimal.RequireFromString("3.125"),
		Fee:           decimal.RequireFromString("0.05"),
		TokenName:     "USDC",
		Status:        domain.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid pending transaction",
			mutate:  func(tx *domain.Transaction) {},
			wantErr: false,
		},
		{
			name:    "missing transaction ID",
			mutate:  func(tx *domain.Transaction) { tx.TransactionID = "" },
			wantErr: true,
			errMsg:  "transaction ID is required",
		},
		{
			name:    "unknown status",
			mutate:  func(tx *domain.Transaction) { tx.Status = "refunded" },
			wantErr: true,
			errMsg:  "transaction status must be successful, pending or failed",
		},
		{
			name:    "negative fee",
			mutate:  func(tx *domain.Transaction) { tx.Fee = decimal.NewFromInt(-1) },
			wantErr: true,
			errMsg:  "transaction amounts cannot be negative",
		},
		{
			name:    "updated before created",
			mutate:  func(tx *domain.Transaction) { tx.UpdatedAt = now.Add(-time.Hour) },
			wantErr: true,
			errMsg:  "transaction updated before it was created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
