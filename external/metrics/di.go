package metrics

import (
	"github.com/foxseedlab/pitwall/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Metrics, error) {
		return New(), nil
	})
	do.Provide(injector, func(i do.Injector) (webhook.Recorder, error) {
		return do.MustInvoke[*Metrics](i), nil
	})
}
