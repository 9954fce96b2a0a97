package prompt

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"sync"
	"text/template"

	"github.com/dmorgan81/mandala/internal/log"
	"github.com/samber/do"
)

//go:embed assets/mandala.tmpl
var mandalaTmpl string

// Builder renders the mandala prompt. The topic is substituted as-is; it is
// descriptive text for the model and is not filtered.
type Builder struct {
	tmpl *template.Template
	once sync.Once
}

func NewBuilder(*do.Injector) (*Builder, error) {
	return &Builder{}, nil
}

func (b *Builder) Build(ctx context.Context, topic string) (string, error) {
	b.once.Do(func() {
		b.tmpl = template.Must(template.New("mandala").Parse(mandalaTmpl))
	})

	log := log.FromContextOrDiscard(ctx).WithGroup("prompt")
	log.Debug("building mandala prompt", "topic", topic)

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, topic); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
