package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/foxseedlab/pitwall/internal/discord"
	"github.com/foxseedlab/pitwall/internal/reply"
	"github.com/foxseedlab/pitwall/internal/schedule"
	"github.com/foxseedlab/pitwall/internal/subscription"
)

const messageRaceWeekNotice = "It's race week! Here is the schedule for the upcoming Grand Prix weekend!"

// Notifier posts the next weekend's schedule to every subscribed chat once
// the race is imminent.
type Notifier struct {
	schedules     schedule.Source
	subscriptions subscription.Store
	client        discord.Client
	now           func() time.Time
}

func NewNotifier(schedules schedule.Source, subs subscription.Store, client discord.Client) *Notifier {
	return &Notifier{
		schedules:     schedules,
		subscriptions: subs,
		client:        client,
		now:           time.Now,
	}
}

func (n *Notifier) SetClock(now func() time.Time) {
	n.now = now
}

// Run returns how many channels received the notice. A failed send is
// logged and the remaining channels are still tried.
func (n *Notifier) Run(ctx context.Context) (int, error) {
	ev, imminent, err := schedule.Next(ctx, n.schedules, n.now())
	if err != nil {
		if errors.Is(err, schedule.ErrNoUpcomingEvent) {
			slog.Info("no upcoming event; skipping race week notice")
			return 0, nil
		}
		return 0, err
	}
	if !imminent {
		slog.Info("next race is not imminent; skipping race week notice", "event", ev.Key, "race_at", ev.Race())
		return 0, nil
	}

	state, err := n.subscriptions.Load(ctx)
	if err != nil {
		return 0, err
	}
	msg := reply.WithCard(messageRaceWeekNotice, schedule.Render(ev))

	sent := 0
	for _, sub := range state.Subscribed() {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		err := n.client.SendChannelMessage(ctx, discord.ChannelMessage{ChannelID: sub.ChannelID, Reply: msg})
		if err != nil {
			slog.Error("failed to send race week notice", "error", err, "chat_id", sub.ChatID, "channel_id", sub.ChannelID)
			continue
		}
		sent++
	}
	slog.Info("race week notice sent", "event", ev.Key, "sent", sent)
	return sent, nil
}
