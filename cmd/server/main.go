package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/rest-notes/internal/api"
	apinotes "github.com/evgeniy-krivenko/rest-notes/internal/api/notes"
	"github.com/evgeniy-krivenko/rest-notes/internal/config"
	"github.com/evgeniy-krivenko/rest-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/rest-notes/pkg/gwserver"
	"github.com/evgeniy-krivenko/rest-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/rest-notes/pkg/metrics"
)

const (
	serviceName      = "rest-notes"
	metricsNamespace = "notes"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, slogx.Settings{
		Level:   cfg.App.LogLevel,
		Pretty:  cfg.App.Pretty,
		Service: serviceName,
	}, ctxtr.LogHandler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	loc, err := cfg.App.Location()
	if err != nil {
		return err
	}

	uc, closeStorage, err := newUsecase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init storage: %v", err)
	}
	defer closeStorage()

	app, err := api.NewApp(apinotes.New(uc, loc), api.AppConfig{
		CORSOrigins: cfg.HTTP.CORSOrigins,
		UIEnabled:   cfg.HTTP.UIEnabled,
	})
	if err != nil {
		return fmt.Errorf("init api: %v", err)
	}

	var (
		handler     http.Handler = adaptor.FiberApp(app)
		middlewares []func(http.Handler) http.Handler
	)
	if cfg.HTTP.MetricsEnabled {
		m := metrics.New(metricsNamespace)
		handler = m.Mount(handler)
		middlewares = append(middlewares, m.Middleware)
	}

	srv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		handler,
		gwserver.WithMiddlewares(middlewares...),
		gwserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	slogx.Info(ctx, "app stopped")

	return nil
}
