package cookie

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/idna"

	"github.com/dmitrymomot/crumbs/core/logger"
)

// Manager reads and writes prefixed cookies for a single request.
// It is not safe for concurrent use, same as http.ResponseWriter.
type Manager struct {
	in     Inbound
	out    Outbound
	logger *slog.Logger
	now    func() time.Time

	initialized bool
	domain      string
	path        string
	prefix      string
	secure      bool
	sameSite    http.SameSite

	// jar holds values written during this request; removed holds wire
	// names deleted during this request. Both shadow the inbound cookies.
	jar     map[string]string
	removed map[string]struct{}
}

// New creates a manager over the given request/response boundary.
// Call Init to apply options; otherwise defaults are applied on first use.
func New(in Inbound, out Outbound, opts ...ManagerOption) *Manager {
	m := &Manager{
		in:      in,
		out:     out,
		logger:  logger.NewNope(),
		now:     time.Now,
		path:    "/",
		prefix:  DefaultPrefix,
		jar:     make(map[string]string),
		removed: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewHTTP creates a manager for a net/http handler. The returned writer must be
// used for the rest of the response so the manager can tell when it's committed.
func NewHTTP(w http.ResponseWriter, r *http.Request, trustProxy bool, opts ...ManagerOption) (*Manager, *ResponseWriter) {
	rw := WrapResponseWriter(w)
	return New(FromRequest(r, trustProxy), rw, opts...), rw
}

// Init applies the cookie policy. Only the first call has any effect.
// The secure flag always follows the request transport.
func (m *Manager) Init(opts ...Option) {
	if m.initialized {
		return
	}
	m.initialized = true

	o := applyOptions(opts)
	if o.Path != "" {
		m.path = o.Path
	}
	if o.prefixSet {
		m.prefix = o.Prefix
	}
	if o.Domain != "" {
		m.domain = o.Domain
	} else {
		m.domain = defaultDomain(m.in.Host())
	}
	m.secure = m.in.Secure()
	m.sameSite = o.SameSite
}

// Initialized reports whether Init has run.
func (m *Manager) Initialized() bool {
	return m.initialized
}

// Domain returns the cookie domain.
func (m *Manager) Domain() string {
	m.ensureInit()
	return m.domain
}

// Path returns the cookie path.
func (m *Manager) Path() string {
	m.ensureInit()
	return m.path
}

// Prefix returns the cookie name prefix.
func (m *Manager) Prefix() string {
	m.ensureInit()
	return m.prefix
}

// Secure reports whether cookies are written with the Secure flag.
func (m *Manager) Secure() bool {
	m.ensureInit()
	return m.secure
}

// Realname returns the wire name for a logical cookie name.
func (m *Manager) Realname(name string) string {
	m.ensureInit()
	return m.prefix + name
}

// Set writes a cookie. An empty value deletes the cookie regardless of expire,
// and so does an expire that resolves to the past. The written value is
// visible to Get for the rest of the request.
//
// Returns ErrInvalidExpire if expire can't be resolved and ErrHeadersSent if
// the response is already committed; in both cases nothing is changed.
func (m *Manager) Set(name, value string, expire Expire, httpOnly bool) error {
	m.ensureInit()

	if value == "" {
		expire = Yesterday
	}

	wire := m.Realname(name)
	now := m.now()

	expires, err := expire.Resolve(now)
	if err != nil {
		m.logger.Warn("cookie rejected",
			logger.Cookie(wire),
			logger.Key("expire", expire.String()),
			logger.Error(err),
		)
		return err
	}

	if m.out.Committed() {
		m.logger.Warn("cookie not written",
			logger.Cookie(wire),
			logger.Error(ErrHeadersSent),
		)
		return fmt.Errorf("%w: %s", ErrHeadersSent, wire)
	}

	c := &http.Cookie{
		Name:     wire,
		Value:    url.QueryEscape(value),
		Path:     m.path,
		Domain:   m.domain,
		Secure:   m.secure,
		HttpOnly: httpOnly,
		SameSite: m.sameSite,
	}

	switch {
	case expires.IsZero():
		m.remember(wire, value)
	case now.After(expires):
		c.Value = ""
		c.Expires = expires
		c.MaxAge = -1
		m.forget(wire)
	default:
		c.Expires = expires
		c.MaxAge = int(expires.Unix() - now.Unix())
		m.remember(wire, value)
	}

	m.out.SetCookie(c)

	m.logger.Debug("cookie written",
		logger.Cookie(wire),
		logger.Action(action(c)),
		logger.Expires(expires),
	)

	return nil
}

// Clear deletes a cookie. Equivalent to Set(name, "", Yesterday, false).
func (m *Manager) Clear(name string) error {
	return m.Set(name, "", Yesterday, false)
}

// Get returns the value of a cookie, taking writes made during this request
// into account. Missing and malformed cookies both return ErrCookieNotFound.
func (m *Manager) Get(name string) (string, error) {
	wire := m.Realname(name)

	if _, ok := m.removed[wire]; ok {
		return "", ErrCookieNotFound
	}
	if v, ok := m.jar[wire]; ok {
		return v, nil
	}

	raw, ok := m.in.Cookie(wire)
	if !ok {
		return "", ErrCookieNotFound
	}
	v, err := url.QueryUnescape(raw)
	if err != nil {
		return "", ErrCookieNotFound
	}
	return v, nil
}

// Value returns the cookie value or an empty string if it isn't set.
func (m *Manager) Value(name string) string {
	v, _ := m.Get(name)
	return v
}

func (m *Manager) ensureInit() {
	if !m.initialized {
		m.Init()
	}
}

func (m *Manager) remember(wire, value string) {
	delete(m.removed, wire)
	m.jar[wire] = value
}

func (m *Manager) forget(wire string) {
	delete(m.jar, wire)
	m.removed[wire] = struct{}{}
}

func action(c *http.Cookie) string {
	if c.MaxAge < 0 {
		return "delete"
	}
	return "set"
}

// defaultDomain derives the cookie domain from the request host:
// lower-cased, "www." stripped, IDNA-encoded and prefixed with a dot.
// IP literals yield "", leaving the cookie host-only.
func defaultDomain(host string) string {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if host == "" {
		return ""
	}
	if net.ParseIP(host) != nil {
		return ""
	}

	host = strings.TrimPrefix(host, "www.")
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}
	return "." + host
}
