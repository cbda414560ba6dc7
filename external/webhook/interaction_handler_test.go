package webhook

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/foxseedlab/pitwall/internal/command"
	"github.com/foxseedlab/pitwall/internal/reply"
)

type mockCommandHandler struct {
	requests []command.Request
	reply    reply.Reply
}

func (m *mockCommandHandler) Handle(_ context.Context, req command.Request) reply.Reply {
	m.requests = append(m.requests, req)
	return m.reply
}

type mockRecorder struct {
	kinds    []string
	rejected int
	commands []string
}

func (m *mockRecorder) InteractionReceived(kind string) { m.kinds = append(m.kinds, kind) }

func (m *mockRecorder) SignatureRejected() { m.rejected++ }

func (m *mockRecorder) CommandHandled(name string, _ time.Duration) {
	m.commands = append(m.commands, name)
}

type testHandler struct {
	handler  *InteractionHandler
	commands *mockCommandHandler
	recorder *mockRecorder
	private  ed25519.PrivateKey
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	commands := &mockCommandHandler{reply: reply.Text("Hello there!")}
	recorder := &mockRecorder{}
	h, err := NewInteractionHandler(hex.EncodeToString(pub), commands, recorder)
	if err != nil {
		t.Fatalf("failed to create handler: %v", err)
	}
	return &testHandler{handler: h, commands: commands, recorder: recorder, private: priv}
}

func (th *testHandler) signedRequest(body string) *http.Request {
	ts := "1700000000"
	sig := ed25519.Sign(th.private, []byte(ts+body))
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	req.Header.Set(headerSignature, hex.EncodeToString(sig))
	req.Header.Set(headerTimestamp, ts)
	return req
}

func (th *testHandler) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.handler.ServeHTTP(rec, req)
	return rec
}

const pingBody = `{"id":"1","application_id":"app-1","type":1,"token":"tok","version":1}`

func TestServeHTTP_AnswersPing(t *testing.T) {
	th := newTestHandler(t)
	rec := th.serve(th.signedRequest(pingBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"type":1}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if len(th.recorder.kinds) != 1 || th.recorder.kinds[0] != "ping" {
		t.Fatalf("unexpected recorded kinds: %v", th.recorder.kinds)
	}
}

func TestServeHTTP_RejectsBadSignature(t *testing.T) {
	th := newTestHandler(t)
	tests := []struct {
		name   string
		mutate func(r *http.Request)
	}{
		{name: "missing headers", mutate: func(r *http.Request) {
			r.Header.Del(headerSignature)
			r.Header.Del(headerTimestamp)
		}},
		{name: "not hex", mutate: func(r *http.Request) { r.Header.Set(headerSignature, "zz") }},
		{name: "other timestamp", mutate: func(r *http.Request) { r.Header.Set(headerTimestamp, "1700000001") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := th.signedRequest(pingBody)
			tt.mutate(req)
			rec := th.serve(req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
	if th.recorder.rejected != len(tests) {
		t.Fatalf("expected %d rejections, got %d", len(tests), th.recorder.rejected)
	}
	if len(th.commands.requests) != 0 {
		t.Fatal("rejected requests must not reach the dispatcher")
	}
}

func TestServeHTTP_RejectsTamperedBody(t *testing.T) {
	th := newTestHandler(t)
	req := th.signedRequest(pingBody)
	tampered := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(strings.Replace(pingBody, "tok", "tak", 1)))
	tampered.Header = req.Header

	if rec := th.serve(tampered); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestServeHTTP_MethodNotAllowed(t *testing.T) {
	th := newTestHandler(t)
	rec := th.serve(httptest.NewRequest(http.MethodGet, "/interactions", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestServeHTTP_BodyTooLarge(t *testing.T) {
	th := newTestHandler(t)
	rec := th.serve(th.signedRequest(strings.Repeat("x", maxBodyBytes+1)))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

const guildCommandBody = `{
  "id": "2", "application_id": "app-1", "type": 2, "token": "tok", "version": 1,
  "guild_id": "guild-1", "channel_id": "chan-1",
  "member": {"user": {"id": "user-1", "username": "fan"}},
  "data": {
    "id": "cmd-gp", "name": "gp", "type": 1,
    "options": [{"name": "location", "type": 1, "options": [{"name": "name", "type": 3, "value": "Monaco"}]}]
  }
}`

func TestServeHTTP_DispatchesGuildCommand(t *testing.T) {
	th := newTestHandler(t)
	th.commands.reply = reply.WithCard("Here is the schedule!", reply.Card{
		Title:  "Monaco",
		Color:  reply.ColorRed,
		Fields: []reply.Field{{Name: "📍 Location", Value: "Monte Carlo"}},
	})

	rec := th.serve(th.signedRequest(guildCommandBody))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	if len(th.commands.requests) != 1 {
		t.Fatalf("expected one dispatched request, got %d", len(th.commands.requests))
	}
	req := th.commands.requests[0]
	if req.CommandName != "gp" || req.GuildID != "guild-1" || req.ChannelID != "chan-1" || req.UserID != "user-1" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if len(req.Options) != 1 || req.Options[0].Name != "location" || req.Options[0].Options[0].Value != "Monaco" {
		t.Fatalf("unexpected options: %+v", req.Options)
	}

	var resp discordgo.InteractionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Fatalf("unexpected response type: %d", resp.Type)
	}
	if resp.Data.Content != "Here is the schedule!" || len(resp.Data.Embeds) != 1 || resp.Data.Embeds[0].Color != reply.ColorRed {
		t.Fatalf("unexpected response data: %+v", resp.Data)
	}
	if len(th.recorder.commands) != 1 || th.recorder.commands[0] != "gp" {
		t.Fatalf("unexpected recorded commands: %v", th.recorder.commands)
	}
}

const directCommandBody = `{
  "id": "3", "application_id": "app-1", "type": 2, "token": "tok", "version": 1,
  "channel_id": "dm-1",
  "user": {"id": "user-1", "username": "fan"},
  "channel": {"id": "dm-1", "type": 1, "recipients": [{"id": "user-1", "username": "fan"}]},
  "data": {"id": "cmd-hello", "name": "hello", "type": 1}
}`

func TestServeHTTP_DirectMessageCarriesRecipient(t *testing.T) {
	th := newTestHandler(t)
	rec := th.serve(th.signedRequest(directCommandBody))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	req := th.commands.requests[0]
	if req.GuildID != "" || req.RecipientID != "user-1" || req.UserID != "user-1" || req.ChannelID != "dm-1" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestNewInteractionHandler_RejectsBadKey(t *testing.T) {
	if _, err := NewInteractionHandler("abcd", &mockCommandHandler{}, nil); err == nil {
		t.Fatal("expected error for short key")
	}
}
