package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache provides a type-safe way to store and retrieve configuration
// instances using generics
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	// globalCache is the singleton instance for caching configurations
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load loads environment variables into the provided configuration struct.
// It ensures that each unique configuration type is only loaded once
// throughout the process lifetime, which matters for a library that may be
// embedded by multiple callers that each ask for the same config type.
//
// The function first attempts to load the default .env file if it hasn't
// been loaded yet, then parses environment variables into a struct based
// on field tags. If loading fails, an appropriate error is returned. Once
// a configuration type is successfully loaded, subsequent calls for the
// same type return the cached value rather than re-parsing the
// environment.
//
// Example:
//
//	type Config struct {
//		CacheSize int `env:"UAA_CACHE_SIZE" envDefault:"10000"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg)
//	if err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if cached, ok := globalCache.lookup(typeName); ok {
		*v = cached.(T)
		return nil
	}

	once := globalCache.onceFor(typeName)
	var parseErr error
	once.Do(func() {
		if err := env.Parse(v); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}
		globalCache.store(typeName, *v) // store a copy to avoid external mutation
	})
	if parseErr != nil {
		return parseErr
	}

	// A concurrent caller may have been the one whose once.Do actually ran
	// and populated the cache; re-read from the cache rather than trusting
	// v, since this call's own Do may have been a no-op.
	cached, ok := globalCache.lookup(typeName)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

func (c *configCache) lookup(typeName string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[typeName]
	return v, ok
}

func (c *configCache) store(typeName string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[typeName] = v
}

// onceFor returns the sync.Once guarding typeName's first parse,
// creating it if this is the first call for that type.
func (c *configCache) onceFor(typeName string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	once, ok := c.onces[typeName]
	if !ok {
		once = new(sync.Once)
		c.onces[typeName] = once
	}
	return once
}

// forget drops typeName's cached value and its once-guard, so the next
// Load for that type re-parses the environment instead of returning a
// stale value.
func (c *configCache) forget(typeName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, typeName)
	delete(c.onces, typeName)
}

// reset clears every cached config type.
func (c *configCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[string]any)
	c.onces = make(map[string]*sync.Once)
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configuration a process cannot start without.
//
// Example:
//
//	var cfg Config
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads one or more .env files into the process environment ahead
// of a Load/MustLoad call, for an embedder that keeps its configuration in
// a non-default location (e.g. a dev environment with per-developer
// overrides layered on a base file). Files are applied in the order
// given, and a variable set by a later file overrides the same variable
// set by an earlier one — the reverse of godotenv's own multi-file
// semantics, which keep whichever file set a variable first. With no
// arguments, it loads the default ".env" in the working directory.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		return godotenv.Load()
	}
	for _, name := range filenames {
		vars, err := godotenv.Read(name)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		for k, v := range vars {
			if err := os.Setenv(k, v); err != nil {
				return errors.Join(ErrLoadingEnvFile, err)
			}
		}
	}
	// The caller is managing env loading explicitly; don't let a later
	// Load call layer the default .env on top and undo an override.
	defaultEnvLoaded.Do(func() {})
	return nil
}

// MustLoadEnv works like LoadEnv but panics if any file fails to load.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(fmt.Sprintf("Failed to load environment files: %v", err))
	}
}

// ResetCache clears every cached config type, for tests that need a Load
// call to re-parse the environment after changing it with t.Setenv.
func ResetCache() {
	globalCache.reset()
}

// ForceReloadConfig re-parses the environment into v even if its type was
// already cached, for a caller that has changed the environment since the
// last Load and needs the new values rather than the cached ones.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	globalCache.forget(getTypeName[T]())
	return Load(v)
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Handle interface types
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
