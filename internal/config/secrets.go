package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Secrets are never kept in the config file; they come from the environment.
type Secrets struct {
	AdminUsername        string `env:"MOVIMENTAI_ADMIN_USERNAME"`
	AdminPasswordHash    string `env:"MOVIMENTAI_ADMIN_PASSWORD_HASH"`
	RedisPassword        string `env:"MOVIMENTAI_REDIS_PASS"`
	GeminiAPIKey         string `env:"GEMINI_API_KEY"`
	PaymentWebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET"`
	SentryDSN            string `env:"SENTRY_DSN"`
	HoneycombEnabled     bool   `env:"HONEYCOMB_ENABLED, default=false"`
	VersionInfo          string `env:"MOVIMENTAI_VERSION_INFO, default=dev"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return loadSecrets(ctx, envconfig.OsLookuper())
}

func loadSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}

// Missing returns the names of secrets that are not set.
// None of them are fatal, but the features depending on them are off.
func (s *Secrets) Missing() []string {
	var missing []string
	if s.AdminUsername == "" {
		missing = append(missing, "MOVIMENTAI_ADMIN_USERNAME")
	}
	if s.AdminPasswordHash == "" {
		missing = append(missing, "MOVIMENTAI_ADMIN_PASSWORD_HASH")
	}
	if s.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if s.PaymentWebhookSecret == "" {
		missing = append(missing, "PAYMENT_WEBHOOK_SECRET")
	}
	return missing
}
