// Package analyzerconfig loads analyzer builder options from environment
// variables, for embedding the analyzer in long-running pipeline
// processes that are already configured that way. It is a thin,
// domain-specific wrapper around pkg/config's generic env loader; it does
// not change parse semantics, only how a Builder gets configured.
package analyzerconfig

import "github.com/dante-securestack/pom-mono-yauaa/pkg/config"

// Config mirrors a subset of the root Builder's options as
// environment-variable-loadable fields.
type Config struct {
	CacheSize      int    `env:"UAA_CACHE_SIZE" envDefault:"10000"`
	PreheatSamples int    `env:"UAA_PREHEAT_SAMPLES" envDefault:"0"`
	ImmediateInit  bool   `env:"UAA_IMMEDIATE_INIT" envDefault:"true"`
	LogFormat      string `env:"UAA_LOG_FORMAT" envDefault:"text"`
	MinimalVersion int    `env:"UAA_MINIMAL_VERSION" envDefault:"0"`
}

// Load parses Config from the environment (and a local .env file, if
// present), caching the result for the lifetime of the process — see
// pkg/config.Load's sync.Once-per-type semantics.
func Load() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails,
// for callers that treat a missing/malformed environment as fatal at
// startup.
func MustLoad() Config {
	var cfg Config
	config.MustLoad(&cfg)
	return cfg
}
