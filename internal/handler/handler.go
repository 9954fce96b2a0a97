package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmorgan81/mandala/internal/image"
	"github.com/dmorgan81/mandala/internal/log"
	"github.com/dmorgan81/mandala/internal/prompt"
	"github.com/samber/do"
)

const (
	MsgMissingCredential = "Please enter your OpenAI API key."
	MsgMissingTopic      = "Please enter an inspiration word."
	MsgSuccess           = "Your mandala has been created!"
	msgFailure           = "Error generating mandala: %s"
	filenameSuffix       = "_mandala.png"
)

type Input struct {
	Credential string
	Topic      string
}

func (i Input) LogValue() slog.Value {
	return slog.GroupValue(slog.String("topic", i.Topic), slog.Bool("credential_set", i.Credential != ""))
}

type Kind int

const (
	KindIdle Kind = iota
	KindValidation
	KindGeneration
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindGeneration:
		return "generation"
	case KindSuccess:
		return "success"
	default:
		return "idle"
	}
}

type Level string

const (
	LevelNone    Level = ""
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelSuccess Level = "success"
)

type Mandala struct {
	PNG      []byte
	Filename string
}

// DataURL is the download link target.
func (m Mandala) DataURL() string {
	return image.DataURL(m.PNG)
}

// Output is the tagged result of one submission. Mandala is only set when
// Kind is KindSuccess.
type Output struct {
	Kind    Kind
	Level   Level
	Message string
	Topic   string
	Mandala *Mandala
}

// State is "result-shown" after a successful submission and "idle" otherwise.
func (o Output) State() string {
	if o.Kind == KindSuccess {
		return "result-shown"
	}
	return "idle"
}

type Handler struct {
	prompter  *prompt.Builder
	generator image.Generator
	fetcher   image.Fetcher
}

func NewHandler(i *do.Injector) (*Handler, error) {
	return &Handler{
		prompter:  do.MustInvoke[*prompt.Builder](i),
		generator: do.MustInvoke[image.Generator](i),
		fetcher:   do.MustInvoke[image.Fetcher](i),
	}, nil
}

func New(prompter *prompt.Builder, generator image.Generator, fetcher image.Fetcher) *Handler {
	return &Handler{prompter, generator, fetcher}
}

// Handle validates the input and, when both fields are present, generates
// one mandala. It never returns an error: every failure is folded into the
// Output so the caller can go back to the form.
func (h *Handler) Handle(ctx context.Context, input Input) Output {
	log := log.FromContextOrDiscard(ctx).WithGroup("handler").With("input", input)
	log.Info("handling submission")

	out := Output{Topic: input.Topic}
	switch {
	case input.Credential == "":
		out.Kind, out.Level, out.Message = KindValidation, LevelError, MsgMissingCredential
		return out
	case input.Topic == "":
		out.Kind, out.Level, out.Message = KindValidation, LevelWarning, MsgMissingTopic
		return out
	}

	mandala, err := h.generate(ctx, input)
	if err != nil {
		log.Error("generation failed", "error", err)
		out.Kind, out.Level, out.Message = KindGeneration, LevelError, fmt.Sprintf(msgFailure, err)
		return out
	}

	log.Info("mandala created", "bytes", len(mandala.PNG))
	out.Kind, out.Level, out.Message = KindSuccess, LevelSuccess, MsgSuccess
	out.Mandala = mandala
	return out
}

func (h *Handler) generate(ctx context.Context, input Input) (_ *Mandala, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	text, err := h.prompter.Build(ctx, input.Topic)
	if err != nil {
		return nil, err
	}

	url, err := h.generator.Generate(ctx, image.Params{Credential: input.Credential, Prompt: text})
	if err != nil {
		return nil, err
	}

	img, err := h.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	data, err := image.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	return &Mandala{PNG: data, Filename: input.Topic + filenameSuffix}, nil
}
