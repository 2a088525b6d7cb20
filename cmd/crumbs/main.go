package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/crumbs/core/config"
	"github.com/dmitrymomot/crumbs/core/cookie"
	"github.com/dmitrymomot/crumbs/core/logger"
	"github.com/dmitrymomot/crumbs/core/server"
	"github.com/dmitrymomot/crumbs/internal/demo"
	"github.com/dmitrymomot/crumbs/middleware"
)

type appConfig struct {
	AppName  string `env:"APP_NAME" envDefault:"crumbs"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Cookie cookie.Config
	Server server.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.ForEnv(cfg.Env, cfg.AppName, logger.ParseLevel(cfg.LogLevel),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	)

	if err := run(cfg, log); err != nil {
		log.Error("crumbs stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler, err := demo.NewRouter(cfg.Cookie, log)
	if err != nil {
		return err
	}

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		return err
	}

	log.Info("cookie policy",
		slog.String("prefix", cfg.Cookie.Prefix),
		slog.String("path", cfg.Cookie.Path),
		logger.Host(cfg.Cookie.Domain),
		slog.Bool("trust_proxy", cfg.Cookie.TrustProxy),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(gctx, handler))

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
