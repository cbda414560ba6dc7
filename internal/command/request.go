package command

import "github.com/foxseedlab/pitwall/internal/subscription"

// Option is one node of a command's option tree. Subcommands carry children
// and no value.
type Option struct {
	Name    string
	Value   string
	Options []Option
}

type Request struct {
	CommandName string
	Options     []Option
	UserID      string
	GuildID     string
	ChannelID   string
	// RecipientID identifies the other participant of a direct message
	// channel. Only used when GuildID is empty.
	RecipientID string
}

func (r Request) contact() (subscription.Contact, bool) {
	if r.ChannelID == "" {
		return subscription.Contact{}, false
	}
	if r.GuildID != "" {
		return subscription.Contact{ChatID: r.GuildID, ChannelID: r.ChannelID, ChannelKind: subscription.ChannelKindGuild}, true
	}
	if r.RecipientID != "" {
		return subscription.Contact{ChatID: r.RecipientID, ChannelID: r.ChannelID, ChannelKind: subscription.ChannelKindDirect}, true
	}
	return subscription.Contact{}, false
}

func (r Request) intent() subscription.Intent {
	switch r.CommandName {
	case commandSubscribe:
		return subscription.IntentSubscribe
	case commandUnsubscribe:
		return subscription.IntentUnsubscribe
	default:
		return subscription.IntentUnchanged
	}
}

func (r Request) subcommand() (Option, bool) {
	if len(r.Options) == 0 {
		return Option{}, false
	}
	return r.Options[0], true
}

func (o Option) child(name string) (Option, bool) {
	for _, c := range o.Options {
		if c.Name == name {
			return c, true
		}
	}
	return Option{}, false
}
