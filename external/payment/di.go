package payment

import (
	"github.com/foxseedlab/pitwall/internal/config"
	"github.com/foxseedlab/pitwall/internal/payment"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (payment.Provider, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewStripeClient(StripeOptions{
			APIURL:     cfg.StripeAPIURL,
			SecretKey:  cfg.StripeSecretKey,
			PriceID:    cfg.StripePriceID,
			SuccessURL: cfg.StripeSuccessURL,
			Timeout:    cfg.HTTPClientTimeout(),
		}), nil
	})
}
