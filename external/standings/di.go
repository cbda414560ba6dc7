package standings

import (
	"github.com/foxseedlab/pitwall/internal/config"
	"github.com/foxseedlab/pitwall/internal/standings"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (standings.Provider, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewErgastClient(cfg.StandingsBaseURL, cfg.HTTPClientTimeout()), nil
	})
}
