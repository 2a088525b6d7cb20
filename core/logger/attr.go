package logger

import (
	"log/slog"
	"net/http"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// slog drops empty attributes, so callers can pass results without checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Network and HTTP
// ============================================================================

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Host creates an attribute for request hosts.
func Host(host string) slog.Attr {
	if host == "" {
		return slog.Attr{}
	}
	return slog.String("host", host)
}

// Addr creates an attribute for listen addresses.
func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}

// ============================================================================
// Cookies
// ============================================================================

// Cookie creates an attribute for a cookie wire name.
func Cookie(name string) slog.Attr {
	return slog.String("cookie", name)
}

// Expires creates an attribute for a cookie expiry. The zero time is
// reported as "session".
func Expires(t time.Time) slog.Attr {
	if t.IsZero() {
		return slog.String("expires", "session")
	}
	return slog.String("expires", t.UTC().Format(http.TimeFormat))
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action creates an attribute for action names.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
