package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsing wraps failures to parse environment variables into a config struct.
var ErrParsing = errors.New("config: failed to parse environment")

var (
	mu      sync.Mutex
	cache   = make(map[reflect.Type]any)
	envOnce sync.Once
)

// Load populates cfg from environment variables. The first call loads a
// .env file from the working directory if present; existing variables win.
// Each type is parsed once and served from cache afterwards.
func Load[T any](cfg *T) error {
	envOnce.Do(func() {
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	typ := reflect.TypeOf((*T)(nil)).Elem()
	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	var v T
	if err := env.Parse(&v); err != nil {
		return fmt.Errorf("%w: %w", ErrParsing, err)
	}

	cache[typ] = v
	*cfg = v
	return nil
}

// MustLoad is like Load but panics on failure. Useful at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset drops all cached configurations so the next Load re-reads the
// environment.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
