package image

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/dmorgan81/mandala/internal/log"
	"github.com/samber/do"
)

// Fetcher downloads a generated image and decodes it.
type Fetcher interface {
	Fetch(context.Context, string) (image.Image, error)
}

type HTTPFetcher struct {
	Client *http.Client
}

func NewHTTPFetcher(i *do.Injector) (Fetcher, error) {
	return &HTTPFetcher{Client: do.MustInvoke[*http.Client](i)}, nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("fetch")
	log.Info("downloading generated image")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code fetching image: %d", resp.StatusCode)
	}

	img, format, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	log.Info("decoded generated image", "format", format, "bounds", img.Bounds().String())
	return img, nil
}
