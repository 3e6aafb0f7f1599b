package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/naira_billpay/internal/adapters/coingecko"
	"github.com/SscSPs/naira_billpay/internal/adapters/paystack"
	portsgw "github.com/SscSPs/naira_billpay/internal/core/ports/gateways"
	"github.com/SscSPs/naira_billpay/internal/core/services"
	"github.com/SscSPs/naira_billpay/internal/handlers"
	"github.com/SscSPs/naira_billpay/internal/middleware"
	"github.com/SscSPs/naira_billpay/internal/platform/config"
	"github.com/SscSPs/naira_billpay/internal/platform/metrics"
	"github.com/SscSPs/naira_billpay/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Naira Bill-Pay API
// @version 1.0
// @description Token pricing, bill quotes and bank verification for the bill-pay dApp.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token from the identity provider, prefixed with "Bearer ".
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	gateways := portsgw.GatewayProvider{
		PriceOracle: coingecko.NewClient(
			&http.Client{Timeout: cfg.UpstreamTimeout},
			cfg.CoinGeckoBaseURL,
			cfg.CoinGeckoAPIKey,
			cfg.FiatCurrency,
			logger,
		).WithObserver(metrics.PrometheusUpstream()),
		Payments: paystack.NewClient(ctx, paystack.Options{
			BaseURL:   cfg.PaystackBaseURL,
			SecretKey: cfg.PaystackSecretKey,
			Country:   cfg.PaystackCountry,
			Timeout:   cfg.UpstreamTimeout,
			Observer:  metrics.PrometheusUpstream(),
		}, logger),
	}
	serviceContainer := services.NewServiceContainer(gateways)

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, "", logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, cors)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendBaseURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouterDeps{
		Limiter: rateLimiter,
		Posthog: posthogClient,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}
