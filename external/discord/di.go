package discord

import (
	"github.com/foxseedlab/pitwall/internal/config"
	discordpkg "github.com/foxseedlab/pitwall/internal/discord"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (discordpkg.Client, error) {
		c := do.MustInvoke[*config.Config](i)
		client, err := NewClient(c.DiscordToken, c.DiscordApplicationID)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
}
