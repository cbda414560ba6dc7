package subscription

import (
	"github.com/foxseedlab/pitwall/internal/repository"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (Store, error) {
		repo := do.MustInvoke[repository.BlobRepository](i)
		return NewBlobStore(repo), nil
	})
}
