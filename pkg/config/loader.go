package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes a single Load call.
type Option func(*options)

type options struct {
	envFiles []string
	prefix   string
}

// WithEnvFiles loads the given dotenv files instead of ".env".
// Missing files are ignored.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		if len(files) > 0 {
			o.envFiles = files
		}
	}
}

// WithPrefix only reads variables starting with prefix, e.g. "CIDADAO_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

var (
	mu       sync.Mutex
	cache    = make(map[string]any)
	loadedMu sync.Mutex
	loaded   = make(map[string]bool)
)

// Load parses environment variables into v. Results are cached per type and
// prefix, so repeated calls are cheap and consistent.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	loadEnvFiles(o.envFiles)

	key := cacheKey[T](o.prefix)

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset clears cached configurations so the next Load parses the environment again.
func Reset() {
	mu.Lock()
	clear(cache)
	mu.Unlock()

	loadedMu.Lock()
	clear(loaded)
	loadedMu.Unlock()
}

func loadEnvFiles(files []string) {
	loadedMu.Lock()
	defer loadedMu.Unlock()

	for _, f := range files {
		if loaded[f] {
			continue
		}
		loaded[f] = true
		// The file is optional; deployments usually set real env vars.
		_ = godotenv.Load(f)
	}
}

func cacheKey[T any](prefix string) string {
	t := reflect.TypeFor[T]()
	return prefix + "|" + t.PkgPath() + "." + t.String()
}
