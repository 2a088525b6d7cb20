// Package demo exposes a cookie manager over HTTP.
package demo

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/crumbs/core/cookie"
	"github.com/dmitrymomot/crumbs/core/logger"
	"github.com/dmitrymomot/crumbs/middleware"
)

// NewRouter builds the demo handler. Each request gets a cookie manager
// initialized from cfg.
func NewRouter(cfg cookie.Config, log *slog.Logger) (http.Handler, error) {
	if log == nil {
		log = logger.NewNope()
	}
	if _, err := cfg.Options(); err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggingWithLogger(log))
	r.Use(middleware.CookiesWithConfig(middleware.CookiesConfig{
		Cookie: &cfg,
		Logger: log,
	}))

	h := &handlers{log: log}
	mountRoutes(r, h)

	return r, nil
}

func mountRoutes(r chi.Router, h *handlers) {
	r.Get("/cookies/{name}", h.handleGet)
	r.Put("/cookies/{name}", h.handleSet)
	r.Delete("/cookies/{name}", h.handleClear)

	r.Get("/visit", h.handleVisit)
	r.Get("/config", h.handleConfig)
}
