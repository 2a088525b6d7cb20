package cookie

import (
	"net"
	"net/http"
	"strings"
)

// Inbound exposes what the client sent with the current request.
type Inbound interface {
	// Cookie returns the raw value of the named cookie.
	Cookie(name string) (string, bool)
	// Host returns the request host without port.
	Host() string
	// Secure reports whether the request arrived over a secure transport.
	Secure() bool
}

// Outbound appends Set-Cookie directives to the current response.
type Outbound interface {
	// Committed reports whether the response header section was already written.
	Committed() bool
	SetCookie(c *http.Cookie)
}

type requestInbound struct {
	r          *http.Request
	trustProxy bool
}

// FromRequest adapts an *http.Request to Inbound.
// When trustProxy is set, "X-Forwarded-Proto: https" marks the request secure.
func FromRequest(r *http.Request, trustProxy bool) Inbound {
	return &requestInbound{r: r, trustProxy: trustProxy}
}

func (in *requestInbound) Cookie(name string) (string, bool) {
	c, err := in.r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (in *requestInbound) Host() string {
	host := in.r.Host
	if host == "" && in.r.URL != nil {
		host = in.r.URL.Host
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.Trim(host, "[]")
}

func (in *requestInbound) Secure() bool {
	if in.r.TLS != nil {
		return true
	}
	return in.trustProxy && strings.EqualFold(in.r.Header.Get("X-Forwarded-Proto"), "https")
}

// ResponseWriter wraps http.ResponseWriter to track whether the response
// header section has been written.
type ResponseWriter struct {
	http.ResponseWriter
	written bool
	status  int
}

// WrapResponseWriter returns w as a *ResponseWriter, wrapping it only once.
func WrapResponseWriter(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

func (w *ResponseWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Committed returns true once the header section has been written.
func (w *ResponseWriter) Committed() bool {
	return w.written
}

// Status returns the HTTP status code of the response, or 0 if not yet written.
func (w *ResponseWriter) Status() int {
	return w.status
}

// SetCookie appends a Set-Cookie header. Callers check Committed first;
// headers added after commit are silently dropped by net/http.
func (w *ResponseWriter) SetCookie(c *http.Cookie) {
	http.SetCookie(w.ResponseWriter, c)
}

// Flush implements http.Flusher. Flushing commits the header section.
func (w *ResponseWriter) Flush() {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
