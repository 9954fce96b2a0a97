package image

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmorgan81/mandala/internal/config"
	"github.com/dmorgan81/mandala/internal/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/samber/do"
)

type OpenAIGenerator struct {
	Client  *http.Client
	BaseURL string
}

func NewOpenAIGenerator(i *do.Injector) (Generator, error) {
	return &OpenAIGenerator{
		Client:  do.MustInvoke[*http.Client](i),
		BaseURL: do.MustInvoke[*config.Config](i).OpenAIBaseURL,
	}, nil
}

// Generate asks for one standard-quality 1024x1024 dall-e-3 image. A client
// is built per call because the key belongs to the submitting user.
func (g *OpenAIGenerator) Generate(ctx context.Context, params Params) (string, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("openai").With("params", params)
	log.Info("generating image via openai")

	opts := []option.RequestOption{
		option.WithAPIKey(params.Credential),
		option.WithHTTPClient(g.Client),
		option.WithMaxRetries(0),
	}
	if g.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(g.BaseURL))
	}
	client := openai.NewClient(opts...)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModelDallE3,
		Prompt:         params.Prompt,
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize1024x1024,
		Quality:        openai.ImageGenerateParamsQualityStandard,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("openai: %w", ErrNoImage)
	}

	log.Info("received image url via openai")
	return resp.Data[0].URL, nil
}
