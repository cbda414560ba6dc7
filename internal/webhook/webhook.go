package webhook

import (
	"context"
	"time"

	"github.com/foxseedlab/pitwall/internal/command"
	"github.com/foxseedlab/pitwall/internal/reply"
)

// CommandHandler answers one slash command. It always produces a reply.
type CommandHandler interface {
	Handle(ctx context.Context, req command.Request) reply.Reply
}

const (
	InteractionPing    = "ping"
	InteractionCommand = "command"
	InteractionOther   = "other"
)

// Recorder observes interaction traffic.
type Recorder interface {
	InteractionReceived(kind string)
	SignatureRejected()
	CommandHandled(name string, elapsed time.Duration)
}

type NopRecorder struct{}

func (NopRecorder) InteractionReceived(string)           {}
func (NopRecorder) SignatureRejected()                   {}
func (NopRecorder) CommandHandled(string, time.Duration) {}
