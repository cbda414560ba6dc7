package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	discordpkg "github.com/foxseedlab/pitwall/internal/discord"
	"github.com/foxseedlab/pitwall/internal/reply"
)

// Client uses the REST half of discordgo only. The session is never opened,
// so no gateway connection is made.
type Client struct {
	session       *discordgo.Session
	applicationID string
}

func NewClient(token, applicationID string) (*Client, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	return &Client{session: s, applicationID: applicationID}, nil
}

func (c *Client) Close() error {
	// Nothing to tear down without a gateway connection.
	return nil
}

func (c *Client) SendChannelMessage(ctx context.Context, msg discordpkg.ChannelMessage) error {
	_, err := c.session.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
		Content: msg.Reply.Content,
		Embeds:  MessageEmbeds(msg.Reply),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", msg.ChannelID, err)
	}
	return nil
}

// UpsertSlashCommands creates missing commands and edits changed ones, matching
// by name. An empty guildID targets global commands.
func (c *Client) UpsertSlashCommands(ctx context.Context, guildID string, defs []discordpkg.SlashCommandDefinition) error {
	appID, err := c.resolveApplicationID(ctx)
	if err != nil {
		return err
	}
	existing, err := c.session.ApplicationCommands(appID, guildID, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}
	existingByName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		if cmd == nil || cmd.Name == "" {
			continue
		}
		existingByName[cmd.Name] = cmd
	}
	for _, def := range defs {
		if err := c.upsertSlashCommand(ctx, appID, guildID, def, existingByName); err != nil {
			return fmt.Errorf("failed to upsert command %q: %w", def.Name, err)
		}
	}
	return nil
}

func (c *Client) upsertSlashCommand(ctx context.Context, appID, guildID string, def discordpkg.SlashCommandDefinition, existingByName map[string]*discordgo.ApplicationCommand) error {
	if def.Name == "" {
		return nil
	}
	payload := &discordgo.ApplicationCommand{
		Name:        def.Name,
		Description: def.Description,
		Options:     commandOptions(def.Options),
	}
	cmd, ok := existingByName[def.Name]
	if !ok {
		slog.Info("creating slash command", "command", def.Name, "guild_id", guildID)
		_, err := c.session.ApplicationCommandCreate(appID, guildID, payload, discordgo.WithContext(ctx))
		return err
	}
	if cmd.Description == def.Description && optionsEqual(cmd.Options, payload.Options) {
		return nil
	}
	slog.Info("updating slash command", "command", def.Name, "guild_id", guildID)
	_, err := c.session.ApplicationCommandEdit(appID, guildID, cmd.ID, payload, discordgo.WithContext(ctx))
	return err
}

func (c *Client) resolveApplicationID(ctx context.Context) (string, error) {
	if c.applicationID != "" {
		return c.applicationID, nil
	}
	// A bot's application id equals its user id.
	u, err := c.session.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("discord application id is not available: %w", err)
	}
	c.applicationID = u.ID
	return c.applicationID, nil
}

func commandOptions(opts []discordpkg.SlashCommandOption) []*discordgo.ApplicationCommandOption {
	if len(opts) == 0 {
		return nil
	}
	out := make([]*discordgo.ApplicationCommandOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, &discordgo.ApplicationCommandOption{
			Type:        optionType(o.Type),
			Name:        o.Name,
			Description: o.Description,
			Required:    o.Required,
			Options:     commandOptions(o.Options),
		})
	}
	return out
}

func optionType(t discordpkg.OptionType) discordgo.ApplicationCommandOptionType {
	switch t {
	case discordpkg.OptionSubCommand:
		return discordgo.ApplicationCommandOptionSubCommand
	default:
		return discordgo.ApplicationCommandOptionString
	}
}

func optionsEqual(a, b []*discordgo.ApplicationCommandOption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x == nil || y == nil {
			if x != y {
				return false
			}
			continue
		}
		if x.Type != y.Type || x.Name != y.Name || x.Description != y.Description || x.Required != y.Required {
			return false
		}
		if !optionsEqual(x.Options, y.Options) {
			return false
		}
	}
	return true
}

// MessageEmbeds converts reply cards into discordgo embeds.
func MessageEmbeds(r reply.Reply) []*discordgo.MessageEmbed {
	if !r.IsCard() {
		return nil
	}
	embeds := make([]*discordgo.MessageEmbed, 0, len(r.Embeds))
	for _, card := range r.Embeds {
		fields := make([]*discordgo.MessageEmbedField, 0, len(card.Fields))
		for _, f := range card.Fields {
			fields = append(fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
		}
		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:  card.Title,
			URL:    card.URL,
			Color:  card.Color,
			Fields: fields,
		})
	}
	return embeds
}
