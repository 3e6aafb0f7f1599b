package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultUpstreamTimeout = 10 * time.Second
	defaultRateLimit       = "60-M"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// Price oracle
	CoinGeckoBaseURL string `mapstructure:"COINGECKO_BASE_URL"`
	CoinGeckoAPIKey  string `mapstructure:"COINGECKO_API_KEY"`
	FiatCurrency     string `mapstructure:"FIAT_CURRENCY"`

	// Payments API
	PaystackBaseURL   string `mapstructure:"PAYSTACK_BASE_URL"`
	PaystackSecretKey string `mapstructure:"PAYSTACK_SECRET_KEY"`
	PaystackCountry   string `mapstructure:"PAYSTACK_COUNTRY"`

	UpstreamTimeout time.Duration

	// Sessions are issued by the identity provider; we only verify them.
	SessionJWTSecret string `mapstructure:"SESSION_JWT_SECRET"`
	RequireSession   bool

	RateLimit     string
	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
	EnableMetrics bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3")
	v.SetDefault("COINGECKO_API_KEY", "")
	v.SetDefault("FIAT_CURRENCY", "ngn")
	v.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	v.SetDefault("PAYSTACK_SECRET_KEY", "")
	v.SetDefault("PAYSTACK_COUNTRY", "nigeria")
	v.SetDefault("UPSTREAM_TIMEOUT", defaultUpstreamTimeout.String())
	v.SetDefault("SESSION_JWT_SECRET", "")
	v.SetDefault("REQUIRE_SESSION", false)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("ENABLE_METRICS", true)

	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load upstream timeout (e.g., "5s", "1m")
	timeoutStr := v.GetString("UPSTREAM_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultUpstreamTimeout
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for UPSTREAM_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
		}
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.FiatCurrency = v.GetString("FIAT_CURRENCY")
	if cfg.FiatCurrency == "" {
		cfg.FiatCurrency = "ngn"
	}

	cfg.PaystackSecretKey = v.GetString("PAYSTACK_SECRET_KEY")
	if cfg.PaystackSecretKey == "" {
		log.Println("Warning: PAYSTACK_SECRET_KEY not set. Bank listing and account verification will fail.")
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")
	cfg.CoinGeckoBaseURL = v.GetString("COINGECKO_BASE_URL")
	cfg.CoinGeckoAPIKey = v.GetString("COINGECKO_API_KEY")
	cfg.PaystackBaseURL = v.GetString("PAYSTACK_BASE_URL")
	cfg.PaystackCountry = v.GetString("PAYSTACK_COUNTRY")
	cfg.UpstreamTimeout = timeout
	cfg.SessionJWTSecret = v.GetString("SESSION_JWT_SECRET")
	cfg.RequireSession = v.GetBool("REQUIRE_SESSION")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.EnableMetrics = v.GetBool("ENABLE_METRICS")

	if cfg.RequireSession && cfg.SessionJWTSecret == "" {
		log.Println("Warning: REQUIRE_SESSION is set but SESSION_JWT_SECRET is empty. Every /api request will be rejected.")
	}

	return cfg
}
