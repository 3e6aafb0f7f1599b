package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it from main instead of reaching for package-level clients.
type ServiceContainer struct {
	Pricing PricingSvcFacade
	Payment PaymentSvcFacade
}
