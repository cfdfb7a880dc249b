package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	BasePriceID   string
	PlusPriceID   string
}

type ClerkConfig struct {
	Issuer         string
	SecretKey      string
	PublishableKey string
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type Config struct {
	Env            string
	Port           string
	BaseURL        string
	DatabaseURL    string
	AuthSecret     string
	LogLevel       string
	AllowedOrigins string
	RateLimitMax   int
	Stripe         StripeConfig
	Clerk          ClerkConfig
	Email          EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Env = getEnv("APP_ENV", "development")
	cfg.Port = getEnv("PORT", "8080")
	cfg.BaseURL = strings.TrimRight(os.Getenv("BASE_URL"), "/")
	cfg.DatabaseURL = os.Getenv("POSTGRES_URL")
	cfg.AuthSecret = os.Getenv("AUTH_SECRET")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.AllowedOrigins = getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	cfg.RateLimitMax = getEnvInt("RATE_LIMIT_MAX", 20)

	// Stripe config
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.Stripe.BasePriceID = getEnv("STRIPE_BASE_PRICE_ID", "product_base_plan")
	cfg.Stripe.PlusPriceID = getEnv("STRIPE_PLUS_PRICE_ID", "product_plus_plan")

	// Clerk config
	cfg.Clerk.Issuer = strings.TrimRight(os.Getenv("CLERK_ISSUER"), "/")
	cfg.Clerk.SecretKey = os.Getenv("CLERK_SECRET_KEY")
	cfg.Clerk.PublishableKey = os.Getenv("NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY")

	// Email config
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "onboarding@resend.dev")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "SaaS Starter")

	return cfg
}

// Validate reports every missing key the API server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.BaseURL == "" {
		errs = append(errs, errors.New("BASE_URL is not set"))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("POSTGRES_URL is not set"))
	}
	if c.Clerk.Issuer == "" && c.AuthSecret == "" {
		errs = append(errs, errors.New("either CLERK_ISSUER or AUTH_SECRET must be set"))
	}
	if c.Stripe.SecretKey != "" && c.Stripe.WebhookSecret == "" {
		errs = append(errs, errors.New("STRIPE_WEBHOOK_SECRET is required when STRIPE_SECRET_KEY is set"))
	}
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			errs = append(errs, errors.New("ALLOWED_ORIGINS cannot be \"*\" because credentials are allowed"))
			break
		}
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) SuccessURL() string {
	return c.BaseURL + "/dashboard"
}

func (c *Config) CancelURL() string {
	return c.BaseURL + "/pricing"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
