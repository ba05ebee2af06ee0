package param

import (
	"context"
	"os"

	"github.com/dmorgan81/fluxgate/internal/log"
	"github.com/samber/do"
)

type EnvFetcher struct{}

func NewEnvFetcher(i *do.Injector) (Fetcher, error) {
	return &EnvFetcher{}, nil
}

func (f *EnvFetcher) Fetch(ctx context.Context, name string) (string, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("env").With("name", name)
	log.Info("fetching parameter")
	return os.Getenv(name), nil
}
