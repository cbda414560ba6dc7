package notify

import (
	"github.com/foxseedlab/pitwall/internal/discord"
	"github.com/foxseedlab/pitwall/internal/schedule"
	"github.com/foxseedlab/pitwall/internal/subscription"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Notifier, error) {
		src := do.MustInvoke[schedule.Source](i)
		subs := do.MustInvoke[subscription.Store](i)
		dc := do.MustInvoke[discord.Client](i)
		return NewNotifier(src, subs, dc), nil
	})
}
