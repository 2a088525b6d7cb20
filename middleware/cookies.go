package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/crumbs/core/cookie"
	"github.com/dmitrymomot/crumbs/core/logger"
)

// cookieManagerContextKey is used as a key for storing the cookie manager in request context.
type cookieManagerContextKey struct{}

// CookiesConfig configures the cookie middleware.
type CookiesConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Cookie is the cookie policy applied to every request (default: cookie.DefaultConfig())
	Cookie *cookie.Config
	// Logger receives cookie write events (default: no-op logger)
	Logger *slog.Logger
}

// Cookies creates a cookie middleware with default configuration.
func Cookies() func(http.Handler) http.Handler {
	return CookiesWithConfig(CookiesConfig{})
}

// CookiesWithConfig creates a middleware that binds a cookie.Manager to each
// request, initialized from cfg.Cookie, and stores it in the request context.
// The downstream handler receives a writer that tracks whether the response
// is committed. Panics if cfg.Cookie is invalid.
func CookiesWithConfig(cfg CookiesConfig) func(http.Handler) http.Handler {
	if cfg.Cookie == nil {
		def := cookie.DefaultConfig()
		cfg.Cookie = &def
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNope()
	}

	opts, err := cfg.Cookie.Options()
	if err != nil {
		panic(fmt.Errorf("middleware: invalid cookie config: %w", err))
	}

	log := cfg.Logger.With(logger.Component("cookie"))
	trustProxy := cfg.Cookie.TrustProxy

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			m, rw := cookie.NewHTTP(w, r, trustProxy, cookie.WithLogger(log))
			m.Init(opts...)

			ctx := context.WithValue(r.Context(), cookieManagerContextKey{}, m)
			next.ServeHTTP(rw, r.WithContext(ctx))
		})
	}
}

// GetCookieManager retrieves the cookie manager from the request context.
// Returns the manager and a boolean indicating whether it was found.
func GetCookieManager(ctx context.Context) (*cookie.Manager, bool) {
	m, ok := ctx.Value(cookieManagerContextKey{}).(*cookie.Manager)
	return m, ok
}
