package schedule

import (
	"github.com/foxseedlab/pitwall/internal/config"
	"github.com/foxseedlab/pitwall/internal/schedule"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (schedule.Source, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewFileSource(cfg.ScheduleDir), nil
	})
}
