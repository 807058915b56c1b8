package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	BaseURL     string

	Identity IdentityConfig
	SMTP     SMTPConfig
	Stripe   StripeConfig
	Storage  StorageConfig
}

// IdentityConfig points at the external identity provider that issues the
// bearer tokens this API verifies. Keys are fetched from JWKSURL and cached
// for KeyRefreshInterval.
type IdentityConfig struct {
	JWKSURL            string
	Issuer             string
	KeyRefreshInterval time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type StripeConfig struct {
	SecretKey       string
	WebhookSecret   string
	SuccessURL      string
	CancelURL       string
	PortalReturnURL string
}

type StorageConfig struct {
	Bucket string
	Region string
	Prefix string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	keyRefresh, err := time.ParseDuration(getEnv("JWKS_REFRESH_INTERVAL", "15m"))
	if err != nil {
		keyRefresh = 15 * time.Minute
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		Identity: IdentityConfig{
			JWKSURL:            getEnvOrPanic("IDP_JWKS_URL"),
			Issuer:             getEnv("IDP_ISSUER", ""),
			KeyRefreshInterval: keyRefresh,
		},

		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},

		Stripe: StripeConfig{
			SecretKey:       getEnv("STRIPE_SECRET_KEY", ""),
			WebhookSecret:   getEnv("STRIPE_WEBHOOK_SECRET", ""),
			SuccessURL:      getEnv("STRIPE_SUCCESS_URL", "http://localhost:3000/billing/success"),
			CancelURL:       getEnv("STRIPE_CANCEL_URL", "http://localhost:3000/billing/cancel"),
			PortalReturnURL: getEnv("STRIPE_PORTAL_RETURN_URL", "http://localhost:3000/settings"),
		},

		Storage: StorageConfig{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("AWS_REGION", "us-east-1"),
			Prefix: getEnv("S3_KEY_PREFIX", "i9-documents"),
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
