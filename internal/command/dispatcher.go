package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foxseedlab/pitwall/internal/payment"
	"github.com/foxseedlab/pitwall/internal/reply"
	"github.com/foxseedlab/pitwall/internal/schedule"
	"github.com/foxseedlab/pitwall/internal/standings"
	"github.com/foxseedlab/pitwall/internal/subscription"
)

type Dispatcher struct {
	schedules     schedule.Source
	subscriptions subscription.Store
	standings     standings.Provider
	payments      payment.Provider
	now           func() time.Time
}

func NewDispatcher(schedules schedule.Source, subs subscription.Store, st standings.Provider, pay payment.Provider) *Dispatcher {
	return &Dispatcher{
		schedules:     schedules,
		subscriptions: subs,
		standings:     st,
		payments:      pay,
		now:           time.Now,
	}
}

func (d *Dispatcher) SetClock(now func() time.Time) {
	d.now = now
}

// Handle turns one command into its reply. Every branch ends in a reply;
// failures of collaborators degrade the reply instead of surfacing.
func (d *Dispatcher) Handle(ctx context.Context, req Request) reply.Reply {
	slog.Info("command received", "command", req.CommandName, "guild_id", req.GuildID, "channel_id", req.ChannelID, "user_id", req.UserID)
	touched := d.touchSubscription(ctx, req)

	if content, ok := staticReplies[req.CommandName]; ok {
		return reply.Text(content)
	}
	switch req.CommandName {
	case commandSubscribe:
		if !touched {
			return reply.Text(messageSubscriptionUnavailable)
		}
		return reply.Text(messageSubscribed)
	case commandUnsubscribe:
		if !touched {
			return reply.Text(messageSubscriptionUnavailable)
		}
		return reply.Text(messageUnsubscribed)
	case commandTicket:
		return d.handleTicket(ctx, req)
	case commandRace:
		return d.handleRace(ctx, req)
	case commandStandings:
		return d.handleStandings(ctx, req)
	case commandGP:
		return d.handleSchedule(ctx, req)
	default:
		slog.Info("unknown command", "command", req.CommandName)
		return reply.Text(messageNotUnderstood)
	}
}

// touchSubscription reports whether the chat's record is stored. Only the
// subscribe and unsubscribe replies depend on it.
func (d *Dispatcher) touchSubscription(ctx context.Context, req Request) bool {
	contact, ok := req.contact()
	if !ok {
		slog.Warn("request has no chat identity; subscription not touched", "command", req.CommandName)
		return false
	}
	if _, err := subscription.Touch(ctx, d.subscriptions, contact, req.intent()); err != nil {
		slog.Error("failed to update subscription", "error", err, "chat_id", contact.ChatID, "command", req.CommandName)
		return false
	}
	return true
}

func (d *Dispatcher) handleTicket(ctx context.Context, req Request) reply.Reply {
	link, err := d.payments.CreateLink(ctx, req.UserID)
	if err != nil {
		slog.Error("failed to create payment link", "error", err, "user_id", req.UserID)
		return reply.Text(messageTicketUnavailable)
	}
	return reply.Text(ticketLinkMessage(link))
}

func (d *Dispatcher) handleRace(ctx context.Context, req Request) reply.Reply {
	paid, err := d.payments.CheckPaid(ctx, req.UserID)
	if err != nil {
		slog.Error("failed to check payment status", "error", err, "user_id", req.UserID)
		return reply.Text(messageRaceCheckFailed)
	}
	if !paid {
		return reply.Text(messageRaceNeedsTicket)
	}
	return reply.Text(messageRaceWelcome)
}

func (d *Dispatcher) handleStandings(ctx context.Context, req Request) reply.Reply {
	sub, ok := req.subcommand()
	if !ok {
		return reply.Text(messageNotUnderstood)
	}
	year := d.now().UTC().Year()

	switch sub.Name {
	case subcommandDrivers:
		fields := standings.DriverErrorFields()
		list, err := d.standings.DriverStandings(ctx)
		if err != nil {
			slog.Error("failed to fetch driver standings", "error", err)
		} else {
			fields = standings.DriverFields(list)
		}
		return reply.WithCard(messageDriverStandings, reply.Card{
			Title:  driverStandingsTitle,
			URL:    fmt.Sprintf(driverStandingsURLFormat, year),
			Color:  reply.ColorRed,
			Fields: fields,
		})
	case subcommandConstructors:
		fields := standings.ConstructorErrorFields()
		list, err := d.standings.ConstructorStandings(ctx)
		if err != nil {
			slog.Error("failed to fetch constructor standings", "error", err)
		} else {
			fields = standings.ConstructorFields(list)
		}
		return reply.WithCard(messageConstructorStandings, reply.Card{
			Title:  constructorStandingsTitle,
			URL:    fmt.Sprintf(constructorStandingsURLFormat, year),
			Color:  reply.ColorRed,
			Fields: fields,
		})
	default:
		return reply.Text(messageNotUnderstood)
	}
}

func (d *Dispatcher) handleSchedule(ctx context.Context, req Request) reply.Reply {
	sub, ok := req.subcommand()
	if !ok {
		return reply.Text(messageNotUnderstood)
	}
	switch sub.Name {
	case subcommandLocation:
		name, ok := sub.child(optionLocationName)
		if !ok || name.Value == "" {
			return reply.Text(messageNotUnderstood)
		}
		return d.scheduleForLocation(ctx, name.Value)
	case subcommandNext:
		return d.scheduleForNext(ctx)
	default:
		return reply.Text(messageNotUnderstood)
	}
}

func (d *Dispatcher) scheduleForLocation(ctx context.Context, name string) reply.Reply {
	ev, err := schedule.Lookup(ctx, d.schedules, d.now().UTC().Year(), name)
	switch {
	case errors.Is(err, schedule.ErrNotFound):
		slog.Info("schedule location not found", "location", name)
		return reply.Text(messageScheduleNotFound)
	case err != nil:
		slog.Error("failed to load schedule", "error", err, "location", name)
		return reply.Text(messageScheduleUnavailable)
	}
	return reply.WithCard(messageScheduleRequested, schedule.Render(ev))
}

func (d *Dispatcher) scheduleForNext(ctx context.Context) reply.Reply {
	ev, _, err := schedule.Next(ctx, d.schedules, d.now())
	switch {
	case errors.Is(err, schedule.ErrNoUpcomingEvent):
		return reply.Text(messageScheduleNoUpcoming)
	case err != nil:
		slog.Error("failed to resolve next event", "error", err)
		return reply.Text(messageScheduleUnavailable)
	}
	return reply.WithCard(messageScheduleNext, schedule.Render(ev))
}
