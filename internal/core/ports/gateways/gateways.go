package gateways

// GatewayProvider holds the outbound clients needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type GatewayProvider struct {
	PriceOracle PriceOracle
	Payments    PaymentsGatewayFacade
}
