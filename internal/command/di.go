package command

import (
	"github.com/foxseedlab/pitwall/internal/payment"
	"github.com/foxseedlab/pitwall/internal/schedule"
	"github.com/foxseedlab/pitwall/internal/standings"
	"github.com/foxseedlab/pitwall/internal/subscription"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Dispatcher, error) {
		src := do.MustInvoke[schedule.Source](i)
		subs := do.MustInvoke[subscription.Store](i)
		st := do.MustInvoke[standings.Provider](i)
		pay := do.MustInvoke[payment.Provider](i)
		return NewDispatcher(src, subs, st, pay), nil
	})
}
