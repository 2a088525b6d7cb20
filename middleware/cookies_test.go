package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/crumbs/core/cookie"
	"github.com/dmitrymomot/crumbs/middleware"
)

func TestCookiesDefaultConfiguration(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(middleware.Cookies())

	var prefix, domain string
	r.Get("/test", func(w http.ResponseWriter, req *http.Request) {
		m, ok := middleware.GetCookieManager(req.Context())
		require.True(t, ok, "cookie manager should be present in context")
		prefix = m.Prefix()
		domain = m.Domain()
		assert.NoError(t, m.Set("theme", "dark", cookie.Permanent, false))
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "http://www.example.com/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "mc_", prefix)
	assert.Equal(t, ".example.com", domain)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "mc_theme", cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
}

func TestCookiesCustomConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Path:       "/app",
		Prefix:     "app_",
		SameSite:   "strict",
		TrustProxy: true,
	}

	r := chi.NewRouter()
	r.Use(middleware.CookiesWithConfig(middleware.CookiesConfig{Cookie: &cfg}))
	r.Get("/app/login", func(w http.ResponseWriter, req *http.Request) {
		m, _ := middleware.GetCookieManager(req.Context())
		assert.Equal(t, "known", m.Value("user"))
		assert.NoError(t, m.Set("user", "alice", cookie.Relative("+2 weeks"), true))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/app/login", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.AddCookie(&http.Cookie{Name: "app_user", Value: "known"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "app_user", c.Name)
	assert.Equal(t, "/app", c.Path)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.InDelta(t, 14*24*60*60, c.MaxAge, 3600)
}

func TestCookiesCommittedResponse(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(middleware.Cookies())

	var setErr error
	r.Get("/stream", func(w http.ResponseWriter, req *http.Request) {
		m, _ := middleware.GetCookieManager(req.Context())
		_, _ = w.Write([]byte("partial"))
		setErr = m.Set("late", "v", cookie.Permanent, false)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.ErrorIs(t, setErr, cookie.ErrHeadersSent)
	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, "partial", w.Body.String())
}

func TestCookiesSkip(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(middleware.CookiesWithConfig(middleware.CookiesConfig{
		Skip: func(req *http.Request) bool { return req.URL.Path == "/health" },
	}))

	var found bool
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		_, found = middleware.GetCookieManager(req.Context())
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.False(t, found)
}

func TestCookiesInvalidConfigPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		middleware.CookiesWithConfig(middleware.CookiesConfig{
			Cookie: &cookie.Config{SameSite: "sideways"},
		})
	})
}
