package calendar

import (
	"github.com/foxseedlab/pitwall/internal/schedule"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Handler, error) {
		return NewHandler(do.MustInvoke[schedule.Source](i)), nil
	})
}
