package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/naira_billpay/internal/apperrors"
	"github.com/SscSPs/naira_billpay/internal/core/domain"
	portsgw "github.com/SscSPs/naira_billpay/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/naira_billpay/internal/core/ports/services"
)

// paymentService validates recipient details against the payments API.
type paymentService struct {
	BaseService
	gateway portsgw.PaymentsGatewayFacade
}

// NewPaymentService creates a PaymentSvcFacade backed by gateway.
func NewPaymentService(gateway portsgw.PaymentsGatewayFacade) portssvc.PaymentSvcFacade {
	return &paymentService{gateway: gateway}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// ListBanks returns every bank the payments API supports.
func (s *paymentService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	banks, err := s.gateway.ListBanks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, err
	}
	if banks == nil {
		banks = []domain.Bank{}
	}
	return banks, nil
}

// VerifyAccount resolves the holder of accountNumber at bankCode. Missing inputs
// fail before any upstream call is made.
func (s *paymentService) VerifyAccount(ctx context.Context, bankCode, accountNumber string) (*domain.AccountDetails, error) {
	bankCode = strings.TrimSpace(bankCode)
	accountNumber = strings.TrimSpace(accountNumber)

	var missing []string
	if bankCode == "" {
		missing = append(missing, "bankCode")
	}
	if accountNumber == "" {
		missing = append(missing, "accountNumber")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", apperrors.ErrValidation, strings.Join(missing, " and "))
	}

	details, err := s.gateway.ResolveAccount(ctx, accountNumber, bankCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to verify account", slog.String("bank_code", bankCode))
		return nil, err
	}

	s.LogInfo(ctx, "Account verified", slog.String("bank_code", bankCode))
	return details, nil
}
