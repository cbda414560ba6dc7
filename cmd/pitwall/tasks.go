package main

import (
	"context"
	"fmt"
	"os"
	"time"

	scheduleimpl "github.com/foxseedlab/pitwall/external/schedule"
	"github.com/foxseedlab/pitwall/internal/command"
	"github.com/foxseedlab/pitwall/internal/discord"
	"github.com/foxseedlab/pitwall/internal/notify"
	"github.com/foxseedlab/pitwall/internal/reply"
	"github.com/foxseedlab/pitwall/internal/schedule"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

const taskTimeout = 2 * time.Minute

func newRegisterCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register-commands",
		Short: "Create or update the bot's slash commands",
		Long: `Creates missing slash commands and updates changed ones. Commands are
registered for DISCORD_GUILD_ID when set, otherwise globally.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dc, err := do.Invoke[discord.Client](setupDI(cfg))
			if err != nil {
				return fmt.Errorf("failed to resolve discord client: %w", err)
			}
			defer dc.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), taskTimeout)
			defer cancel()
			if err := dc.UpsertSlashCommands(ctx, cfg.DiscordGuildID, command.SlashCommandDefinitions()); err != nil {
				return fmt.Errorf("failed to upsert slash commands: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "slash commands registered")
			return nil
		},
	}
}

func newNotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Send the race week notice once, if the next race is imminent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			notifier, err := do.Invoke[*notify.Notifier](setupDI(cfg))
			if err != nil {
				return fmt.Errorf("failed to resolve notifier: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), taskTimeout)
			defer cancel()
			sent, err := notifier.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "race week notice sent to %d channel(s)\n", sent)
			return nil
		},
	}
}

var flagScheduleDir string

// next needs only the schedule documents, so it does not load the full
// configuration.
func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next Grand Prix weekend from the local schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := scheduleimpl.NewFileSource(flagScheduleDir)
			ev, imminent, err := schedule.Next(cmd.Context(), src, time.Now())
			if err != nil {
				return err
			}
			printCard(cmd, schedule.Render(ev))
			if imminent {
				fmt.Fprintln(cmd.OutOrStdout(), "It's race week!")
			}
			return nil
		},
	}
	defaultDir := os.Getenv("SCHEDULE_DIR")
	if defaultDir == "" {
		defaultDir = "data/schedule"
	}
	cmd.Flags().StringVar(&flagScheduleDir, "schedule-dir", defaultDir, "Directory holding <year>.json schedule documents")
	return cmd
}

func printCard(cmd *cobra.Command, card reply.Card) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, card.Title)
	for _, f := range card.Fields {
		fmt.Fprintf(out, "  %s: %s\n", f.Name, f.Value)
	}
}
