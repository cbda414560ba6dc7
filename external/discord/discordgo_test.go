package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	discordpkg "github.com/foxseedlab/pitwall/internal/discord"
	"github.com/foxseedlab/pitwall/internal/reply"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T, appID string, rt roundTripFunc) *Client {
	t.Helper()
	c, err := NewClient("test-token", appID)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if rt != nil {
		c.session.Client = &http.Client{Transport: rt}
	}
	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

type recordedRequest struct {
	method string
	path   string
	body   []byte
}

func TestSendChannelMessage_SendsContentAndEmbeds(t *testing.T) {
	var got recordedRequest
	c := newTestClient(t, "app-1", func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		got = recordedRequest{method: req.Method, path: req.URL.Path, body: body}
		return jsonResponse(http.StatusOK, `{"id":"msg-1","channel_id":"chan-1"}`), nil
	})

	msg := reply.WithCard("It's race week!", reply.Card{
		Title:  "Monaco",
		Color:  reply.ColorRed,
		Fields: []reply.Field{{Name: "📍 Location", Value: "Monte Carlo"}},
	})
	if err := c.SendChannelMessage(context.Background(), discordpkg.ChannelMessage{ChannelID: "chan-1", Reply: msg}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.method != http.MethodPost || !strings.HasSuffix(got.path, "/channels/chan-1/messages") {
		t.Fatalf("unexpected request: %s %s", got.method, got.path)
	}
	var sent discordgo.MessageSend
	if err := json.Unmarshal(got.body, &sent); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if sent.Content != "It's race week!" || len(sent.Embeds) != 1 {
		t.Fatalf("unexpected message: %+v", sent)
	}
	if sent.Embeds[0].Color != reply.ColorRed || sent.Embeds[0].Fields[0].Value != "Monte Carlo" {
		t.Fatalf("unexpected embed: %+v", sent.Embeds[0])
	}
}

func TestSendChannelMessage_ReturnsRESTError(t *testing.T) {
	c := newTestClient(t, "app-1", func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"message":"Missing Access","code":50001}`), nil
	})

	err := c.SendChannelMessage(context.Background(), discordpkg.ChannelMessage{ChannelID: "chan-1", Reply: reply.Text("hi")})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestUpsertSlashCommands_CreatesMissingAndEditsChanged(t *testing.T) {
	var calls []recordedRequest
	c := newTestClient(t, "app-1", func(req *http.Request) (*http.Response, error) {
		var body []byte
		if req.Body != nil {
			body, _ = io.ReadAll(req.Body)
		}
		calls = append(calls, recordedRequest{method: req.Method, path: req.URL.Path, body: body})
		switch req.Method {
		case http.MethodGet:
			return jsonResponse(http.StatusOK, `[
				{"id":"cmd-hello","application_id":"app-1","name":"hello","description":"Say hello to the bot.","type":1},
				{"id":"cmd-about","application_id":"app-1","name":"about","description":"old text","type":1}
			]`), nil
		default:
			return jsonResponse(http.StatusOK, `{"id":"cmd-new","application_id":"app-1","name":"x","description":"x","type":1}`), nil
		}
	})

	defs := []discordpkg.SlashCommandDefinition{
		{Name: "hello", Description: "Say hello to the bot."},
		{Name: "about", Description: "Find out what this bot does."},
		{
			Name:        "gp",
			Description: "Grand Prix weekend schedules.",
			Options: []discordpkg.SlashCommandOption{
				{Type: discordpkg.OptionSubCommand, Name: "next", Description: "Next one."},
			},
		},
	}
	if err := c.UpsertSlashCommands(context.Background(), "guild-1", defs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) != 3 {
		t.Fatalf("expected list, edit and create calls, got %d: %+v", len(calls), calls)
	}
	if calls[0].method != http.MethodGet || !strings.HasSuffix(calls[0].path, "/applications/app-1/guilds/guild-1/commands") {
		t.Fatalf("unexpected list call: %+v", calls[0])
	}
	if calls[1].method != http.MethodPatch || !strings.HasSuffix(calls[1].path, "/commands/cmd-about") {
		t.Fatalf("unexpected edit call: %+v", calls[1])
	}
	if calls[2].method != http.MethodPost {
		t.Fatalf("unexpected create call: %+v", calls[2])
	}
	var created discordgo.ApplicationCommand
	if err := json.Unmarshal(calls[2].body, &created); err != nil {
		t.Fatalf("failed to decode create body: %v", err)
	}
	if created.Name != "gp" || len(created.Options) != 1 || created.Options[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		t.Fatalf("unexpected created command: %+v", created)
	}
}

func TestUpsertSlashCommands_ResolvesApplicationIDFromBotUser(t *testing.T) {
	var paths []string
	c := newTestClient(t, "", func(req *http.Request) (*http.Response, error) {
		paths = append(paths, req.URL.Path)
		if strings.HasSuffix(req.URL.Path, "/users/@me") {
			return jsonResponse(http.StatusOK, `{"id":"bot-1","username":"pitwall","bot":true}`), nil
		}
		return jsonResponse(http.StatusOK, `[]`), nil
	})

	if err := c.UpsertSlashCommands(context.Background(), "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 || !strings.HasSuffix(paths[1], "/applications/bot-1/commands") {
		t.Fatalf("unexpected calls: %v", paths)
	}
}

func TestMessageEmbeds_TextReplyHasNone(t *testing.T) {
	if embeds := MessageEmbeds(reply.Text("hello")); embeds != nil {
		t.Fatalf("expected no embeds, got %+v", embeds)
	}
}
