package services

import (
	portsgw "github.com/SscSPs/naira_billpay/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/naira_billpay/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(gw portsgw.GatewayProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Pricing: NewPricingService(gw.PriceOracle),
		Payment: NewPaymentService(gw.Payments),
	}
}
