package inject_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmorgan81/mandala/internal/config"
	"github.com/dmorgan81/mandala/internal/handle"
	"github.com/dmorgan81/mandala/internal/image"
	"github.com/dmorgan81/mandala/internal/inject"
	"github.com/samber/do"
)

func TestSetup(t *testing.T) {
	cfg := &config.Config{Addr: ":0", OpenAIBaseURL: "http://localhost:1/v1/"}
	injector := inject.Setup(context.Background(), cfg)
	t.Cleanup(func() { _ = injector.Shutdown() })

	gen, ok := do.MustInvoke[image.Generator](injector).(*image.OpenAIGenerator)
	if !ok {
		t.Fatal("generator is not the openai implementation")
	}
	if gen.BaseURL != cfg.OpenAIBaseURL {
		t.Fatalf("BaseURL = %q, want %q", gen.BaseURL, cfg.OpenAIBaseURL)
	}

	server := do.MustInvoke[*handle.Server](injector)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}

	if _, err := do.Invoke[*handle.FunctionURLHandler](injector); err != nil {
		t.Fatalf("Invoke FunctionURLHandler: %v", err)
	}
}
