// Package logger provides structured logging utilities built on log/slog.
//
// Create loggers with the factory:
//
//	log := logger.New(logger.WithDevelopment("crumbs"))
//	log := logger.New(logger.WithProduction("crumbs"), logger.WithLevel(slog.LevelWarn))
//
// Libraries default to NewNope so they stay silent until a logger is injected.
//
// Attribute helpers return an empty slog.Attr for nil input, which slog drops:
//
//	log.Warn("cookie not written",
//		logger.Cookie("mc_theme"),
//		logger.Error(err),
//	)
package logger
