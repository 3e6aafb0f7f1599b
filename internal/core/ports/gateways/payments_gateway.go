package gateways

import (
	"context"

	"github.com/SscSPs/naira_billpay/internal/core/domain"
)

// BankLister lists the banks the payments API can pay out to.
type BankLister interface {
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// AccountResolver looks up the holder of a bank account.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.AccountDetails, error)
}

// PaymentsGatewayFacade combines all payments API operations.
// Failures are *apperrors.UpstreamError values.
type PaymentsGatewayFacade interface {
	BankLister
	AccountResolver
}
