package discord

import (
	"context"

	"github.com/foxseedlab/pitwall/internal/reply"
)

type OptionType int

const (
	OptionSubCommand OptionType = iota + 1
	OptionString
)

type SlashCommandOption struct {
	Type        OptionType
	Name        string
	Description string
	Required    bool
	Options     []SlashCommandOption
}

type SlashCommandDefinition struct {
	Name        string
	Description string
	Options     []SlashCommandOption
}

type ChannelMessage struct {
	ChannelID string
	Reply     reply.Reply
}

// Client is the REST side of Discord. Interactions arrive over the webhook,
// so no gateway connection is needed.
type Client interface {
	UpsertSlashCommands(ctx context.Context, guildID string, defs []SlashCommandDefinition) error
	SendChannelMessage(ctx context.Context, msg ChannelMessage) error
	Close() error
}
