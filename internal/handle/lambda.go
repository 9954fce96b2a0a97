package handle

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/dmorgan81/mandala/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
)

// FunctionURLHandler runs the form Server behind a Lambda Function URL.
type FunctionURLHandler struct {
	server http.Handler
}

func NewFunctionURLHandler(i *do.Injector) (*FunctionURLHandler, error) {
	return &FunctionURLHandler{server: do.MustInvoke[*Server](i)}, nil
}

func (h *FunctionURLHandler) Handle(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("FunctionURLHandler")
	log.Info("handling lambda invocation", "method", request.RequestContext.HTTP.Method, "path", request.RawPath)

	req, err := toHTTPRequest(ctx, request)
	if err != nil {
		return events.LambdaFunctionURLResponse{}, err
	}

	rec := &recorder{header: http.Header{}}
	h.server.ServeHTTP(rec, req)

	return events.LambdaFunctionURLResponse{
		StatusCode: lo.Ternary(rec.status == 0, http.StatusOK, rec.status),
		Headers: lo.MapValues(rec.header, func(v []string, _ string) string {
			return strings.Join(v, ",")
		}),
		Body: rec.body.String(),
	}, nil
}

func toHTTPRequest(ctx context.Context, request events.LambdaFunctionURLRequest) (*http.Request, error) {
	body := []byte(request.Body)
	if request.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(request.Body)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	u := &url.URL{Path: lo.Ternary(request.RawPath == "", "/", request.RawPath), RawQuery: request.RawQueryString}
	req, err := http.NewRequestWithContext(ctx, request.RequestContext.HTTP.Method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range request.Headers {
		req.Header.Set(k, v)
	}
	req.Host = request.Headers["host"]
	req.RemoteAddr = request.RequestContext.HTTP.SourceIP
	return req, nil
}

type recorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
}

func (r *recorder) Write(b []byte) (int, error) {
	r.WriteHeader(http.StatusOK)
	return r.body.Write(b)
}
