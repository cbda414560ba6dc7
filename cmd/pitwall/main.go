package main

import (
	"log/slog"
	"os"

	calendarimpl "github.com/foxseedlab/pitwall/external/calendar"
	configloader "github.com/foxseedlab/pitwall/external/config"
	discordimpl "github.com/foxseedlab/pitwall/external/discord"
	"github.com/foxseedlab/pitwall/external/metrics"
	paymentimpl "github.com/foxseedlab/pitwall/external/payment"
	repositoryimpl "github.com/foxseedlab/pitwall/external/repository"
	scheduleimpl "github.com/foxseedlab/pitwall/external/schedule"
	standingsimpl "github.com/foxseedlab/pitwall/external/standings"
	webhookimpl "github.com/foxseedlab/pitwall/external/webhook"
	"github.com/foxseedlab/pitwall/internal/command"
	"github.com/foxseedlab/pitwall/internal/config"
	"github.com/foxseedlab/pitwall/internal/notify"
	"github.com/foxseedlab/pitwall/internal/subscription"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pitwall",
		Short: "Formula 1 Discord bot served over interaction webhooks",
		Long: `pitwall answers Discord slash commands about Grand Prix schedules,
championship standings and race tickets, and posts race week notices to
subscribed chats.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newServeCmd(),
		newRegisterCommandsCmd(),
		newNotifyCmd(),
		newNextCmd(),
	)
	return cmd
}

func loadConfig() (*config.Config, error) {
	slog.Info("startup: loading configuration")
	cfg, err := configloader.Load()
	if err != nil {
		return nil, err
	}
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env)
	return cfg, nil
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

// Providers are lazy, so commands that never resolve the repository never
// open a database connection.
func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	repositoryimpl.RegisterDI(injector)
	scheduleimpl.RegisterDI(injector)
	standingsimpl.RegisterDI(injector)
	paymentimpl.RegisterDI(injector)
	discordimpl.RegisterDI(injector)
	metrics.RegisterDI(injector)
	subscription.RegisterDI(injector)
	command.RegisterDI(injector)
	notify.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	calendarimpl.RegisterDI(injector)

	return injector
}
