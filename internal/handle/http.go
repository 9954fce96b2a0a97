package handle

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dmorgan81/mandala/internal/handler"
	"github.com/dmorgan81/mandala/internal/log"
	"github.com/dmorgan81/mandala/internal/page"
	"github.com/samber/do"
)

const maxFormBytes = 1 << 20

// Server serves the mandala form: GET renders it idle, POST runs one
// submission and renders the outcome.
type Server struct {
	handler   *handler.Handler
	templator *page.Templator
	mux       *http.ServeMux
}

func NewServer(i *do.Injector) (*Server, error) {
	return newServer(do.MustInvoke[*handler.Handler](i), do.MustInvoke[*page.Templator](i)), nil
}

func newServer(h *handler.Handler, t *page.Templator) *Server {
	s := &Server{handler: h, templator: t, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.index)
	s.mux.HandleFunc("POST /{$}", s.submit)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.FromContextOrDiscard(r.Context()).Info("handling http request", "method", r.Method, "path", r.URL.Path)
	s.mux.ServeHTTP(w, r)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.render(r.Context(), w, handler.Output{})
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	out := s.handler.Handle(r.Context(), handler.Input{
		Credential: r.PostForm.Get("api_key"),
		Topic:      r.PostForm.Get("topic"),
	})
	s.render(r.Context(), w, out)
}

func (s *Server) render(ctx context.Context, w http.ResponseWriter, out handler.Output) {
	html, err := s.templator.Template(ctx, toPageParams(out))
	if err != nil {
		log.FromContextOrDiscard(ctx).Error("rendering page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(html)
}

func toPageParams(out handler.Output) page.Params {
	params := page.Params{
		Topic:   out.Topic,
		Level:   string(out.Level),
		Message: out.Message,
	}
	if out.Mandala != nil {
		params.DownloadURL = template.URL(out.Mandala.DataURL())
		params.Filename = out.Mandala.Filename
	}
	return params
}
