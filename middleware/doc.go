// Package middleware provides net/http middleware for the cookie manager
// and the usual request plumbing around it.
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID())
//	r.Use(middleware.LoggingWithLogger(log))
//	r.Use(middleware.CookiesWithConfig(middleware.CookiesConfig{
//		Cookie: &cfg.Cookie,
//		Logger: log,
//	}))
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		cookies, _ := middleware.GetCookieManager(r.Context())
//		theme := cookies.Value("theme")
//		// ...
//	})
//
// Logging and Cookies share one commit-tracking writer, so the cookie
// manager knows when the response header section has been written.
package middleware
