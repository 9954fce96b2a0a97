package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dmorgan81/mandala/internal/config"
	"github.com/dmorgan81/mandala/internal/handle"
	"github.com/dmorgan81/mandala/internal/inject"
	"github.com/dmorgan81/mandala/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := lo.Must(config.Load())
	logger := log.New(os.Stderr, log.ParseLevel(cfg.LogLevel))
	ctx := log.NewContext(context.Background(), logger)
	injector := inject.Setup(ctx, cfg)

	if cfg.Lambda {
		handler := do.MustInvoke[*handle.FunctionURLHandler](injector)
		lambda.StartWithOptions(handler.Handle, lambda.WithContext(ctx), lambda.WithEnableSIGTERM(func() {
			_ = injector.Shutdown()
		}))
		return
	}

	if err := serve(ctx, cfg.Addr, do.MustInvoke[*handle.Server](injector)); err != nil {
		logger.Error("server stopped", "error", err)
		_ = injector.Shutdown()
		os.Exit(1)
	}
	_ = injector.Shutdown()
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	base := context.WithoutCancel(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.FromContextOrDiscard(ctx).Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
