package cookie_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/crumbs/core/cookie"
)

func TestFromRequest(t *testing.T) {
	t.Run("host without port", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "http://www.example.com:8080/", nil)
		assert.Equal(t, "www.example.com", cookie.FromRequest(r, false).Host())
	})

	t.Run("ipv6 host", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Host = "[::1]:8080"
		assert.Equal(t, "::1", cookie.FromRequest(r, false).Host())

		r.Host = "[::1]"
		assert.Equal(t, "::1", cookie.FromRequest(r, false).Host())
	})

	t.Run("cookies", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "mc_theme", Value: "dark"})

		in := cookie.FromRequest(r, false)
		v, ok := in.Cookie("mc_theme")
		assert.True(t, ok)
		assert.Equal(t, "dark", v)

		_, ok = in.Cookie("missing")
		assert.False(t, ok)
	})

	t.Run("secure transport", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.False(t, cookie.FromRequest(r, false).Secure())

		r.TLS = &tls.ConnectionState{}
		assert.True(t, cookie.FromRequest(r, false).Secure())
	})

	t.Run("forwarded proto requires trust", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-Proto", "HTTPS")

		assert.False(t, cookie.FromRequest(r, false).Secure())
		assert.True(t, cookie.FromRequest(r, true).Secure())
	})
}

func TestResponseWriter(t *testing.T) {
	t.Run("write commits", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := cookie.WrapResponseWriter(rec)
		assert.False(t, w.Committed())
		assert.Equal(t, 0, w.Status())

		_, err := w.Write([]byte("hi"))
		require.NoError(t, err)
		assert.True(t, w.Committed())
		assert.Equal(t, http.StatusOK, w.Status())
	})

	t.Run("write header commits once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := cookie.WrapResponseWriter(rec)

		w.WriteHeader(http.StatusAccepted)
		w.WriteHeader(http.StatusTeapot)

		assert.True(t, w.Committed())
		assert.Equal(t, http.StatusAccepted, w.Status())
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("flush commits", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := cookie.WrapResponseWriter(rec)

		w.Flush()
		assert.True(t, w.Committed())
		assert.True(t, rec.Flushed)
	})

	t.Run("wraps once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := cookie.WrapResponseWriter(rec)
		assert.Same(t, w, cookie.WrapResponseWriter(w))
		assert.Equal(t, http.ResponseWriter(rec), w.Unwrap())
	})
}

func TestNewHTTP(t *testing.T) {
	t.Run("writes set-cookie header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://www.Example.COM/", nil)

		m, w := cookie.NewHTTP(rec, r, false, cookie.WithClock(fixedClock))
		m.Init()
		require.NoError(t, m.Set("theme", "dark", cookie.Permanent, true))
		w.WriteHeader(http.StatusNoContent)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "mc_theme", c.Name)
		assert.Equal(t, "dark", c.Value)
		assert.Equal(t, "example.com", c.Domain)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, 365*24*60*60, c.MaxAge)
		assert.True(t, c.Expires.Equal(testNow.AddDate(1, 0, 0)))
	})

	t.Run("round trip through request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		m, _ := cookie.NewHTTP(rec, r, false)
		require.NoError(t, m.Set("msg", "a b&c", cookie.Session, false))

		next := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range rec.Result().Cookies() {
			next.AddCookie(c)
		}

		m2, _ := cookie.NewHTTP(httptest.NewRecorder(), next, false)
		assert.Equal(t, "a b&c", m2.Value("msg"))
	})

	t.Run("fails after headers are written", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "mc_theme", Value: "light"})

		m, w := cookie.NewHTTP(rec, r, false)
		_, err := w.Write([]byte("body"))
		require.NoError(t, err)

		err = m.Set("theme", "dark", cookie.Permanent, false)
		assert.ErrorIs(t, err, cookie.ErrHeadersSent)
		assert.Empty(t, rec.Result().Cookies())
		assert.Equal(t, "light", m.Value("theme"))
	})

	t.Run("reuses wrapped writer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		wrapped := cookie.WrapResponseWriter(rec)
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, w := cookie.NewHTTP(wrapped, r, false)
		assert.Same(t, wrapped, w)
	})
}
