package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmorgan81/fluxgate/internal/config"
	"github.com/dmorgan81/fluxgate/internal/image"
	"github.com/dmorgan81/fluxgate/internal/log"
	"github.com/dmorgan81/fluxgate/internal/metrics"
	"github.com/dmorgan81/fluxgate/internal/page"
	"github.com/dmorgan81/fluxgate/internal/param"
	"github.com/dmorgan81/fluxgate/internal/server"
	"github.com/samber/do"
)

func Setup(ctx context.Context, cfg config.Config) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Info(fmt.Sprintf(format, args...))
		},
	})

	do.ProvideValue[config.Config](injector, cfg)
	do.Provide[*http.Client](injector, func(i *do.Injector) (*http.Client, error) {
		return &http.Client{Timeout: cfg.Gateway.Timeout}, nil
	})

	do.Provide[param.Fetcher](injector, param.NewEnvFetcher)
	do.ProvideNamed[string](injector, "token", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, cfg.Gateway.TokenParam)
	})

	do.Provide[image.Generator](injector, image.NewHuggingFaceGenerator)
	do.Provide[*metrics.Collector](injector, metrics.NewCollector)
	do.Provide[*page.Templator](injector, page.NewTemplator)
	do.Provide[*server.Server](injector, server.New)

	return injector
}
