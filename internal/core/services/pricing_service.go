package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/naira_billpay/internal/core/domain"
	portsgw "github.com/SscSPs/naira_billpay/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/naira_billpay/internal/core/ports/services"
	"github.com/SscSPs/naira_billpay/internal/utils"
	"github.com/shopspring/decimal"
)

// pricingService ties the price oracle to the fiat/token converter and the balance formatter.
// Errors from the oracle and the utilities are returned as-is; callers decide on messaging.
type pricingService struct {
	BaseService
	oracle portsgw.PriceOracle
}

// NewPricingService creates a PricingSvcFacade backed by oracle.
func NewPricingService(oracle portsgw.PriceOracle) portssvc.PricingSvcFacade {
	return &pricingService{oracle: oracle}
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// GetTokenPrice resolves symbol to a supported token and fetches its fiat price.
func (s *pricingService) GetTokenPrice(ctx context.Context, symbol string) (*domain.TokenPrice, error) {
	token := domain.ParseToken(symbol)
	oracleID := token.OracleID()

	price, err := s.oracle.GetPrice(ctx, oracleID)
	if err != nil {
		s.LogError(ctx, err, "Price lookup failed", slog.String("token", string(token)), slog.String("oracle_id", oracleID))
		return nil, err
	}

	return &domain.TokenPrice{
		Token:    token,
		OracleID: oracleID,
		Currency: s.oracle.Currency(),
		Price:    price,
	}, nil
}

// QuoteBill prices symbol and converts fiatAmount into the token's base units.
func (s *pricingService) QuoteBill(ctx context.Context, fiatAmount decimal.Decimal, symbol string) (*domain.TokenPrice, *domain.TokenAmount, error) {
	price, err := s.GetTokenPrice(ctx, symbol)
	if err != nil {
		return nil, nil, err
	}

	amount, err := utils.ConvertFiatToToken(fiatAmount, string(price.Token), price.Price)
	if err != nil {
		s.LogError(ctx, err, "Conversion failed",
			slog.String("token", string(price.Token)),
			slog.String("fiat_amount", fiatAmount.String()),
			slog.String("price", price.Price.String()),
		)
		return nil, nil, err
	}

	s.LogInfo(ctx, "Bill quoted",
		slog.String("token", string(amount.Token)),
		slog.String("fiat_amount", fiatAmount.String()),
		slog.Int64("base_units", amount.BaseUnits),
	)
	return price, &amount, nil
}

// FormatBalance renders a raw base-unit balance for display.
func (s *pricingService) FormatBalance(balance string, decimals int) (string, error) {
	return utils.FormatBalance(balance, decimals)
}
