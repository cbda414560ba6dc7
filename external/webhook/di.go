package webhook

import (
	"github.com/foxseedlab/pitwall/internal/command"
	"github.com/foxseedlab/pitwall/internal/config"
	"github.com/foxseedlab/pitwall/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*InteractionHandler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		dispatcher := do.MustInvoke[*command.Dispatcher](i)
		recorder := do.MustInvoke[webhook.Recorder](i)
		return NewInteractionHandler(cfg.DiscordPublicKey, dispatcher, recorder)
	})
}
