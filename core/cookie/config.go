package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultPrefix is prepended to every logical cookie name unless overridden.
const DefaultPrefix = "mc_"

// Config provides environment-based configuration for cookie managers.
// Prefix is applied as-is, so the zero Config means "no prefix";
// use DefaultConfig or config.Load to get the defaults.
type Config struct {
	Path   string `env:"COOKIE_PATH" envDefault:"/"`
	Domain string `env:"COOKIE_DOMAIN" envDefault:""`
	Prefix string `env:"COOKIE_PREFIX" envDefault:"mc_"`
	// SameSite accepts "lax", "strict", "none" or empty (attribute omitted).
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:""`
	// TrustProxy honors X-Forwarded-Proto when detecting secure transport.
	TrustProxy bool `env:"COOKIE_TRUST_PROXY" envDefault:"false"`
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		Path:   "/",
		Prefix: DefaultPrefix,
	}
}

// Options converts the configuration into Init options.
// Empty Path and Domain fall back to the computed defaults.
func (c Config) Options() ([]Option, error) {
	sameSite, err := ParseSameSite(c.SameSite)
	if err != nil {
		return nil, err
	}

	opts := []Option{WithPrefix(c.Prefix)}
	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if sameSite != 0 {
		opts = append(opts, WithSameSite(sameSite))
	}

	return opts, nil
}

// ParseSameSite converts a configuration string to http.SameSite.
// An empty string yields 0, which leaves the attribute off the header.
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSameSite, s)
	}
}
