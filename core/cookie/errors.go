package cookie

import "errors"

// Error variables define failure scenarios in cookie management.
var (
	// ErrHeadersSent indicates the response header section was already written,
	// so no further Set-Cookie directives can be appended.
	ErrHeadersSent = errors.New("cookie: response headers already sent")

	// ErrInvalidExpire indicates an expiration expression couldn't be parsed.
	ErrInvalidExpire = errors.New("cookie: invalid expire expression")

	// ErrCookieNotFound indicates the requested cookie doesn't exist in the request
	// or was deleted earlier in the same request.
	ErrCookieNotFound = errors.New("cookie: not found")

	// ErrUnknownSameSite indicates an unsupported SameSite configuration value.
	ErrUnknownSameSite = errors.New("cookie: unknown SameSite value")
)
