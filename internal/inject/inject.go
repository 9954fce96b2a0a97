package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmorgan81/mandala/internal/config"
	"github.com/dmorgan81/mandala/internal/handle"
	"github.com/dmorgan81/mandala/internal/handler"
	"github.com/dmorgan81/mandala/internal/image"
	"github.com/dmorgan81/mandala/internal/log"
	"github.com/dmorgan81/mandala/internal/page"
	"github.com/dmorgan81/mandala/internal/prompt"
	"github.com/samber/do"
)

func Setup(ctx context.Context, cfg *config.Config) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		},
	})
	do.ProvideValue[*config.Config](injector, cfg)
	do.ProvideValue[*http.Client](injector, http.DefaultClient)

	do.Provide[*prompt.Builder](injector, prompt.NewBuilder)
	do.Provide[image.Generator](injector, image.NewOpenAIGenerator)
	do.Provide[image.Fetcher](injector, image.NewHTTPFetcher)
	do.Provide[*page.Templator](injector, page.NewTemplator)
	do.Provide[*handler.Handler](injector, handler.NewHandler)
	do.Provide[*handle.Server](injector, handle.NewServer)
	do.Provide[*handle.FunctionURLHandler](injector, handle.NewFunctionURLHandler)

	return injector
}
