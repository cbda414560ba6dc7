package config

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const discordPublicKeyBytes = 32

type Config struct {
	Env                  string
	ListenAddr           string
	DiscordToken         string
	DiscordPublicKey     string
	DiscordApplicationID string
	DiscordGuildID       string
	DatabaseURL          string
	ScheduleDir          string
	StandingsBaseURL     string
	StripeSecretKey      string
	StripePriceID        string
	StripeSuccessURL     string
	StripeAPIURL         string
	HTTPClientTimeoutSec int
	NotifyEnabled        bool
	NotifyCron           string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	key, err := hex.DecodeString(c.DiscordPublicKey)
	if err != nil || len(key) != discordPublicKeyBytes {
		return fmt.Errorf("DISCORD_PUBLIC_KEY must be a hex encoded %d byte ed25519 key", discordPublicKeyBytes)
	}
	if c.HTTPClientTimeoutSec <= 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT_SEC must be positive, got %d", c.HTTPClientTimeoutSec)
	}
	if c.NotifyEnabled {
		if c.NotifyCron == "" {
			return fmt.Errorf("NOTIFY_CRON is required when NOTIFY_ENABLED=true")
		}
		if _, err := cron.ParseStandard(c.NotifyCron); err != nil {
			return fmt.Errorf("NOTIFY_CRON is invalid: %w", err)
		}
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "LISTEN_ADDR", value: c.ListenAddr},
		{name: "DISCORD_TOKEN", value: c.DiscordToken},
		{name: "DISCORD_PUBLIC_KEY", value: c.DiscordPublicKey},
		{name: "DATABASE_URL", value: c.DatabaseURL},
		{name: "SCHEDULE_DIR", value: c.ScheduleDir},
		{name: "STANDINGS_BASE_URL", value: c.StandingsBaseURL},
		{name: "STRIPE_SECRET_KEY", value: c.StripeSecretKey},
		{name: "STRIPE_PRICE_ID", value: c.StripePriceID},
		{name: "STRIPE_SUCCESS_URL", value: c.StripeSuccessURL},
		{name: "STRIPE_API_URL", value: c.StripeAPIURL},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) HTTPClientTimeout() time.Duration {
	return time.Duration(c.HTTPClientTimeoutSec) * time.Second
}
