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
	prefix   string
	envFiles []string
	noCache  bool
}

// WithPrefix prepends prefix to every env tag, so `env:"MAX_LENGTH"` with
// prefix "WORDGEN_" reads WORDGEN_MAX_LENGTH.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing. Missing files are
// ignored. Without this option the default ".env" is tried once per process.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// WithoutCache parses the environment again even if the type was loaded before.
func WithoutCache() Option {
	return func(o *options) { o.noCache = true }
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using `env` and `envDefault` field
// tags. Each (type, prefix) pair is parsed once per process; later calls get a
// copy of the cached value.
//
//	type Config struct {
//		MaxLength int `env:"MAX_LENGTH" envDefault:"15"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("WORDGEN_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.envFiles) > 0 {
		// Missing files are fine; the environment may be set another way.
		_ = godotenv.Load(o.envFiles...)
	} else {
		defaultEnvLoaded.Do(func() { _ = godotenv.Load() })
	}

	key := cacheKey[T](o.prefix)

	if !o.noCache {
		cacheMu.RLock()
		cached, ok := cache[key]
		cacheMu.RUnlock()
		if ok {
			*v = cached.(T)
			return nil
		}
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	cache[key] = parsed
	cacheMu.Unlock()

	*v = parsed
	return nil
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	cacheMu.Lock()
	cache = make(map[string]any)
	cacheMu.Unlock()
}

func cacheKey[T any](prefix string) string {
	return reflect.TypeFor[T]().String() + "|" + prefix
}
