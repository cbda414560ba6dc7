package webhook

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	discordimpl "github.com/foxseedlab/pitwall/external/discord"
	"github.com/foxseedlab/pitwall/internal/command"
	"github.com/foxseedlab/pitwall/internal/reply"
	"github.com/foxseedlab/pitwall/internal/webhook"
)

const (
	maxBodyBytes = 1 << 20

	headerSignature = "X-Signature-Ed25519"
	headerTimestamp = "X-Signature-Timestamp"

	// Discord drops an interaction that is not answered within three seconds.
	commandTimeout = 2500 * time.Millisecond
)

// InteractionHandler receives Discord interactions over HTTP, verifies their
// signature and answers slash commands synchronously.
type InteractionHandler struct {
	publicKey ed25519.PublicKey
	commands  webhook.CommandHandler
	recorder  webhook.Recorder
}

func NewInteractionHandler(publicKeyHex string, commands webhook.CommandHandler, recorder webhook.Recorder) (*InteractionHandler, error) {
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("discord public key must be %d hex encoded bytes", ed25519.PublicKeySize)
	}
	if recorder == nil {
		recorder = webhook.NopRecorder{}
	}
	return &InteractionHandler{publicKey: ed25519.PublicKey(key), commands: commands, recorder: recorder}, nil
}

// The channel object Discord attaches to interactions. Only the fields
// needed to identify a direct message partner are decoded.
type interactionChannel struct {
	Channel *struct {
		ID         string `json:"id"`
		GuildID    string `json:"guild_id"`
		Recipients []struct {
			ID string `json:"id"`
		} `json:"recipients"`
	} `json:"channel"`
}

func (h *InteractionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		http.Error(w, "read body failed", http.StatusBadRequest)
		return
	}
	if len(body) > maxBodyBytes {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}
	if !h.verify(r.Header.Get(headerSignature), r.Header.Get(headerTimestamp), body) {
		h.recorder.SignatureRejected()
		slog.Warn("rejected interaction with invalid signature", "remote_addr", r.RemoteAddr)
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	var ic discordgo.Interaction
	if err := json.Unmarshal(body, &ic); err != nil {
		slog.Warn("failed to decode interaction", "error", err)
		http.Error(w, "invalid interaction", http.StatusBadRequest)
		return
	}

	switch ic.Type {
	case discordgo.InteractionPing:
		h.recorder.InteractionReceived(webhook.InteractionPing)
		writeJSON(w, &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})
	case discordgo.InteractionApplicationCommand:
		h.recorder.InteractionReceived(webhook.InteractionCommand)
		req := toRequest(&ic, body)
		started := time.Now()
		ctx, cancel := context.WithTimeout(r.Context(), commandTimeout)
		rep := h.commands.Handle(ctx, req)
		cancel()
		h.recorder.CommandHandled(req.CommandName, time.Since(started))
		writeJSON(w, commandResponse(rep))
	default:
		h.recorder.InteractionReceived(webhook.InteractionOther)
		slog.Info("ignoring unsupported interaction type", "type", int(ic.Type))
		http.Error(w, "unsupported interaction type", http.StatusBadRequest)
	}
}

// verify checks the Ed25519 signature Discord computes over timestamp + body.
func (h *InteractionHandler) verify(signatureHex, timestamp string, body []byte) bool {
	if signatureHex == "" || timestamp == "" {
		return false
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	return ed25519.Verify(h.publicKey, msg, sig)
}

func toRequest(ic *discordgo.Interaction, raw []byte) command.Request {
	data := ic.ApplicationCommandData()
	req := command.Request{
		CommandName: data.Name,
		Options:     toOptions(data.Options),
		GuildID:     ic.GuildID,
		ChannelID:   ic.ChannelID,
	}
	if ic.Member != nil && ic.Member.User != nil {
		req.UserID = ic.Member.User.ID
	}
	if req.UserID == "" && ic.User != nil {
		req.UserID = ic.User.ID
	}
	if req.GuildID == "" {
		req.RecipientID = directRecipient(raw, req.UserID)
	}
	return req
}

func directRecipient(raw []byte, fallback string) string {
	var extra interactionChannel
	if err := json.Unmarshal(raw, &extra); err != nil || extra.Channel == nil {
		return fallback
	}
	for _, r := range extra.Channel.Recipients {
		if r.ID != "" {
			return r.ID
		}
	}
	return fallback
}

func toOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) []command.Option {
	if len(opts) == 0 {
		return nil
	}
	out := make([]command.Option, 0, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		opt := command.Option{Name: o.Name, Options: toOptions(o.Options)}
		if o.Value != nil {
			opt.Value = fmt.Sprint(o.Value)
		}
		out = append(out, opt)
	}
	return out
}

func commandResponse(r reply.Reply) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: r.Content,
			Embeds:  discordimpl.MessageEmbeds(r),
		},
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write interaction response", "error", err)
	}
}
