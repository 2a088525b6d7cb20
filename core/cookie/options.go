package cookie

import (
	"log/slog"
	"net/http"
	"time"
)

// Options holds the values supplied to Manager.Init.
// Unset fields keep the manager defaults.
type Options struct {
	Path      string
	Domain    string
	Prefix    string
	SameSite  http.SameSite
	prefixSet bool
}

// Option is a functional option for Manager.Init.
type Option func(*Options)

// WithPath sets the cookie path. Empty values are ignored.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithDomain sets the cookie domain. Empty values keep the domain computed
// from the request host.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithPrefix sets the prefix prepended to every cookie name.
// An empty prefix is allowed and disables prefixing.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
		o.prefixSet = true
	}
}

// WithSameSite sets the SameSite attribute for every cookie the manager writes.
func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// ManagerOption configures the Manager itself rather than the cookie policy.
type ManagerOption func(*Manager)

// WithLogger sets the logger used to report cookie writes.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock overrides the time source used to resolve expirations.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func applyOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
