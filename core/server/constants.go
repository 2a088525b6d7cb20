package server

import "time"

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = ":8080"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultMaxHeaderBytes bounds request headers, cookies included.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)
