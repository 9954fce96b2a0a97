package page

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"sync"

	"github.com/dmorgan81/mandala/internal/log"
	"github.com/samber/do"
)

//go:embed assets/index.html
var indexTmpl string

// Params describes one render of the form page. DownloadURL is only set once
// a mandala exists; the inline image reads its bytes from the download link
// so the payload is sent once.
type Params struct {
	Topic       string
	Level       string
	Message     string
	DownloadURL template.URL
	Filename    string
}

type Templator struct {
	tmpl *template.Template
	once sync.Once
}

func NewTemplator(*do.Injector) (*Templator, error) {
	return &Templator{}, nil
}

func (g *Templator) Template(ctx context.Context, params Params) ([]byte, error) {
	g.once.Do(func() {
		g.tmpl = template.Must(template.New("index").Parse(indexTmpl))
	})

	log := log.FromContextOrDiscard(ctx).WithGroup("templator")
	log.Info("generating page", "level", params.Level, "result", params.DownloadURL != "")

	var data bytes.Buffer
	if err := g.tmpl.Execute(&data, params); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
