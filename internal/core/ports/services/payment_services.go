package services

import (
	"context"

	"github.com/SscSPs/naira_billpay/internal/core/domain"
)

// BankReaderSvc defines bank listing.
type BankReaderSvc interface {
	// ListBanks returns every bank the payments API supports.
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// AccountVerifierSvc defines recipient account verification.
type AccountVerifierSvc interface {
	// VerifyAccount resolves the account holder. Both arguments are required.
	VerifyAccount(ctx context.Context, bankCode, accountNumber string) (*domain.AccountDetails, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	BankReaderSvc
	AccountVerifierSvc
}
