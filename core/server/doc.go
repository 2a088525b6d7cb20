// Package server wraps http.Server with graceful shutdown and
// environment-driven configuration.
//
// # Basic Usage
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Run blocks until ctx is canceled, then drains in-flight requests within
// the shutdown timeout.
//
// # TLS
//
// Setting SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE serves HTTPS with
// DefaultTLSConfig. Requests then carry TLS state, which is what cookie
// managers consult for the Secure flag. Behind a terminating proxy, serve
// plain HTTP and enable COOKIE_TRUST_PROXY instead.
//
// # Defaults
//
//   - ReadTimeout: 15 seconds
//   - WriteTimeout: 15 seconds
//   - IdleTimeout: 60 seconds
//   - MaxHeaderBytes: 1 MB
//   - Shutdown timeout: 30 seconds
//   - Logger: discards everything
//
// Addr reports the bound address after Start, so ":0" works in tests.
package server
