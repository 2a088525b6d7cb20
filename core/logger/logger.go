package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type options struct {
	level      slog.Level
	json       bool
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures a logger created by New.
type Option func(*options)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithTextFormatter switches output to logfmt-style text.
func WithTextFormatter() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithContextExtractors adds extractors evaluated on every *Context log call.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// WithDevelopment configures text output at debug level.
func WithDevelopment(service string) Option {
	return withPreset(WithTextFormatter(), slog.LevelDebug, service, "development")
}

// WithProduction configures JSON output at info level.
func WithProduction(service string) Option {
	return withPreset(WithJSONFormatter(), slog.LevelInfo, service, "production")
}

func withPreset(format Option, level slog.Level, service, env string) Option {
	return func(o *options) {
		for _, opt := range []Option{
			format,
			WithLevel(level),
			WithAttr(slog.String("service", service), slog.String("env", env)),
		} {
			opt(o)
		}
	}
}

// New creates a logger. Defaults to text output at info level on stdout.
func New(opts ...Option) *slog.Logger {
	o := options{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(o.output, handlerOpts)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}

	return slog.New(NewLogHandlerDecorator(h, o.extractors...))
}

// ForEnv picks development or production defaults by environment name.
// Extra options are applied after the defaults.
func ForEnv(env, service string, level slog.Level, opts ...Option) *slog.Logger {
	base := WithDevelopment(service)
	switch strings.ToLower(env) {
	case "production", "prod", "staging":
		base = WithProduction(service)
	}
	return New(append([]Option{base, WithLevel(level)}, opts...)...)
}

// ParseLevel converts "debug", "info", "warn" or "error" to slog.Level.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
