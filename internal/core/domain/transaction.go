package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state of a bill payment.
type TransactionStatus string

const (
	StatusSuccessful TransactionStatus = "successful"
	StatusPending    TransactionStatus = "pending"
	StatusFailed     TransactionStatus = "failed"
)

// IsValid reports whether s is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusSuccessful, StatusPending, StatusFailed:
		return true
	default:
		return false
	}
}

// Transaction is a bill payment record read from contract events.
// Nothing in this service creates or mutates one; it is a data contract for clients.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // On-chain tx hash or event id
	Recipient     string            `json:"recipient"`     // Account holder name
	AccountNumber string            `json:"accountNumber"`
	BankCode      string            `json:"bankCode"`
	BankName      string            `json:"bankName"`
	FiatAmount    decimal.Decimal   `json:"fiatAmount"`  // NGN
	TokenAmount   decimal.Decimal   `json:"tokenAmount"` // Whole token units
	Fee           decimal.Decimal   `json:"fee"`
	TokenName     string            `json:"tokenName"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// Validate checks the record is internally consistent.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return errors.New("transaction ID is required")
	}
	if !t.Status.IsValid() {
		return errors.New("transaction status must be successful, pending or failed")
	}
	if t.FiatAmount.IsNegative() || t.TokenAmount.IsNegative() || t.Fee.IsNegative() {
		return errors.New("transaction amounts cannot be negative")
	}
	if !t.UpdatedAt.IsZero() && t.UpdatedAt.Before(t.CreatedAt) {
		return errors.New("transaction updated before it was created")
	}
	return nil
}
