package image

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoImage is returned when the generation service answers without an
// image URL.
var ErrNoImage = errors.New("no image returned")

type Params struct {
	Credential string
	Prompt     string
}

// LogValue keeps the credential out of every log line.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(slog.String("prompt", p.Prompt))
}

// Generator requests a single image and returns the URL it can be fetched from.
type Generator interface {
	Generate(context.Context, Params) (string, error)
}
