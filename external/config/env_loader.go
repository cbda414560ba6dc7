package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/pitwall/internal/config"
)

type envConfig struct {
	Env                  string `env:"ENV" envDefault:"production"`
	ListenAddr           string `env:"LISTEN_ADDR" envDefault:":8080"`
	DiscordToken         string `env:"DISCORD_TOKEN,required"`
	DiscordPublicKey     string `env:"DISCORD_PUBLIC_KEY,required"`
	DiscordApplicationID string `env:"DISCORD_APPLICATION_ID"`
	DiscordGuildID       string `env:"DISCORD_GUILD_ID"`
	DatabaseURL          string `env:"DATABASE_URL,required"`
	ScheduleDir          string `env:"SCHEDULE_DIR" envDefault:"data/schedule"`
	StandingsBaseURL     string `env:"STANDINGS_BASE_URL" envDefault:"https://api.jolpi.ca/ergast/f1"`
	StripeSecretKey      string `env:"STRIPE_SECRET_KEY,required"`
	StripePriceID        string `env:"STRIPE_PRICE_ID,required"`
	StripeSuccessURL     string `env:"STRIPE_SUCCESS_URL" envDefault:"https://www.formula1.com/"`
	StripeAPIURL         string `env:"STRIPE_API_URL" envDefault:"https://api.stripe.com"`
	HTTPClientTimeoutSec int    `env:"HTTP_CLIENT_TIMEOUT_SEC" envDefault:"10"`
	NotifyEnabled        bool   `env:"NOTIFY_ENABLED" envDefault:"true"`
	NotifyCron           string `env:"NOTIFY_CRON" envDefault:"0 12 * * 3"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                  raw.Env,
		ListenAddr:           raw.ListenAddr,
		DiscordToken:         raw.DiscordToken,
		DiscordPublicKey:     raw.DiscordPublicKey,
		DiscordApplicationID: raw.DiscordApplicationID,
		DiscordGuildID:       raw.DiscordGuildID,
		DatabaseURL:          raw.DatabaseURL,
		ScheduleDir:          raw.ScheduleDir,
		StandingsBaseURL:     raw.StandingsBaseURL,
		StripeSecretKey:      raw.StripeSecretKey,
		StripePriceID:        raw.StripePriceID,
		StripeSuccessURL:     raw.StripeSuccessURL,
		StripeAPIURL:         raw.StripeAPIURL,
		HTTPClientTimeoutSec: raw.HTTPClientTimeoutSec,
		NotifyEnabled:        raw.NotifyEnabled,
		NotifyCron:           raw.NotifyCron,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
