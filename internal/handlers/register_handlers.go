package handlers

import (
	"github.com/SscSPs/naira_billpay/cmd/docs"
	portssvc "github.com/SscSPs/naira_billpay/internal/core/ports/services"
	"github.com/SscSPs/naira_billpay/internal/middleware"
	"github.com/SscSPs/naira_billpay/internal/platform/config"
	"github.com/SscSPs/naira_billpay/internal/platform/metrics"
	"github.com/SscSPs/naira_billpay/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouterDeps carries the per-process collaborators shared by every /api route.
type RouterDeps struct {
	Limiter *limiter.Limiter            // nil disables rate limiting
	Posthog *utils.PosthogClientWrapper // nil disables analytics
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	if cfg.EnableMetrics {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	setupAPIRoutes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	api := r.Group("/api")

	// Auth info stays reachable without a session.
	RegisterAuthRoutes(api)

	protected := api.Group("", middleware.SessionMiddleware(cfg.SessionJWTSecret, cfg.RequireSession))
	if deps.Limiter != nil {
		protected.Use(middleware.RateLimit(deps.Limiter))
	}
	protected.Use(middleware.PosthogMiddleware(deps.Posthog))

	RegisterPaymentRoutes(protected, services.Payment)
	RegisterPricingRoutes(protected, services.Pricing)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
