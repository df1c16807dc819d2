package yauaa

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/analyzerconfig"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/logger"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/parsecache"
	"github.com/dante-securestack/pom-mono-yauaa/ruleset"
)

// defaultCacheSize is the parse cache capacity a Builder uses when CacheSize
// is never called, mirroring pkg/analyzerconfig.Config's UAA_CACHE_SIZE
// default.
const defaultCacheSize = 10000

// Option configures a Builder using the functional-options pattern
// (Option func(*buildConfig)).
type Option func(*buildConfig)

type buildConfig struct {
	cacheSizeSet      bool
	cacheSize         int
	cacheInstantiator parsecache.Instantiator
	fields            []field.Field
	showMatcherStats  bool
	minimalVersion    int
	dropTests         bool
	delayed           bool
	preheatSamples    []string
	loggerRequested   bool
	loggerOpts        []logger.Option
	err               error
}

// CacheSize sets the parse cache capacity; 0 disables caching entirely
// (every parse recomputes). Negative values are rejected at Build time
// with a UsageError.
func CacheSize(n int) Option {
	return func(c *buildConfig) {
		c.cacheSizeSet = true
		c.cacheSize = n
	}
}

// DisableCaching is sugar for CacheSize(0).
func DisableCaching() Option {
	return CacheSize(0)
}

// CacheInstantiator supplies a custom Store factory in place of the
// default bounded LRU, for callers that want a different eviction policy
// or a distributed backend (see pkg/redis.NewStore, wrapped as an
// Instantiator by the caller).
func CacheInstantiator(i parsecache.Instantiator) Option {
	return func(c *buildConfig) { c.cacheInstantiator = i }
}

// WithFields restricts every parse's Result to the given fields; fields
// outside this set are skipped by Map.Freeze and report their default
// sentinel if asked for. An empty or never-called WithFields parses the
// full catalog.
func WithFields(fields ...field.Field) Option {
	return func(c *buildConfig) { c.fields = append([]field.Field(nil), fields...) }
}

// ShowMatcherStats logs the compiled matcher and calculator counts (and
// the chosen cache backend) through WithLogger's logger once Build
// finishes. A no-op if no logger was requested, and, under
// DelayedInitialization, a no-op until the lazy build actually runs (the
// counts don't exist yet at Build time in that mode).
func ShowMatcherStats() Option {
	return func(c *buildConfig) { c.showMatcherStats = true }
}

// ShowMinimalVersion enables MinimalVersionTrim for every version field in
// the built-in pipeline, reducing each to at most components dot-separated
// parts.
func ShowMinimalVersion(components int) Option {
	return func(c *buildConfig) { c.minimalVersion = components }
}

// DropTests is accepted for interface parity with the option table this
// module's rule-authoring tooling would otherwise expose, but is a no-op
// here: the built-in catalog (package ruleset) never loads rule-test
// corpora into memory in the first place, so there is nothing to drop.
func DropTests() Option {
	return func(c *buildConfig) { c.dropTests = true }
}

// ImmediateInitialization compiles the built-in rule set and
// post-processor pipeline during Build, surfacing any ConfigError to
// Build's caller. This is the default.
func ImmediateInitialization() Option {
	return func(c *buildConfig) { c.delayed = false }
}

// DelayedInitialization defers compiling the rule set and pipeline until
// the first Parse/ParseHeaders call. A build failure in this mode cannot
// surface as a ConfigError (Parse is total, see pkg/field's totality
// contract): it is logged, if a logger was supplied, and the analyzer
// falls back to the built-in rule set without minimal-version trimming
// for the rest of its lifetime.
func DelayedInitialization() Option {
	return func(c *buildConfig) { c.delayed = true }
}

// Preheat draws n samples (capped to the size of the built-in corpus,
// ruleset.PreheatSamples) and parses them during Build, warming the rule
// store's candidate index and the parse cache before real traffic
// arrives. A negative n is rejected at Build time with a UsageError.
func Preheat(n int) Option {
	return func(c *buildConfig) {
		if n < 0 {
			c.err = ErrNegativePreheat
			return
		}
		samples := ruleset.PreheatSamples()
		if n < len(samples) {
			samples = samples[:n]
		}
		c.preheatSamples = samples
	}
}

// PreheatWith parses the given samples during Build instead of the
// built-in corpus, for callers whose real traffic shape differs enough
// from the default fixture to be worth a bespoke warm-up set.
func PreheatWith(samples []string) Option {
	return func(c *buildConfig) { c.preheatSamples = append([]string(nil), samples...) }
}

// WithLogger requests build diagnostics (when ShowMatcherStats is set) and
// logging of the rare fallback conditions that never fail a parse but are
// still worth recording (a failed delayed build, a parse after Destroy).
// opts configure the underlying pkg/logger.New call the same way they
// would for any other logger in this module; Build appends
// logger.WithBuildStats automatically once the matcher/calculator counts
// and cache backend are known, so ShowMatcherStats needs no logger option
// of its own. By default the analyzer logs nothing, keeping the hot path
// free of I/O.
func WithLogger(opts ...logger.Option) Option {
	return func(c *buildConfig) {
		c.loggerRequested = true
		c.loggerOpts = append([]logger.Option(nil), opts...)
	}
}

// Builder accumulates Options and produces an Analyzer via Build: a
// fluent builder that validates and assembles the rule set once, rather
// than configuring an Analyzer piecemeal after construction.
type Builder struct {
	cfg buildConfig
}

// NewBuilder returns a Builder with every option at its documented
// default: cache size 10000, full field catalog, immediate
// initialization, no preheat, no logger.
func NewBuilder() *Builder {
	return &Builder{cfg: buildConfig{cacheSize: defaultCacheSize}}
}

// With applies opts in order, for callers assembling options
// programmatically (e.g. OptionsFromConfig's result)
// rather than chaining Option-returning methods directly.
func (b *Builder) With(opts ...Option) *Builder {
	for _, opt := range opts {
		opt(&b.cfg)
	}
	return b
}

// Build validates the accumulated options and produces an Analyzer.
// Negative CacheSize/Preheat values fail with a UsageError; a malformed
// built-in rule set or post-processor pipeline fails with a ConfigError
// (only reachable with ImmediateInitialization, the default).
func (b *Builder) Build() (*Analyzer, error) {
	cfg := b.cfg
	if cfg.err != nil {
		return nil, newUsageError(cfg.err)
	}
	if cfg.cacheSizeSet && cfg.cacheSize < 0 {
		return nil, newUsageError(ErrNegativeCacheSize)
	}

	cacheSize := cfg.cacheSize
	if !cfg.cacheSizeSet {
		cacheSize = defaultCacheSize
	}

	var cache parsecache.Store
	var backend string
	switch {
	case cacheSize <= 0:
		cache = parsecache.NewNoop()
		backend = "disabled"
	case cfg.cacheInstantiator != nil:
		cache = cfg.cacheInstantiator(cacheSize)
		backend = "custom"
	default:
		cache = parsecache.NewLRU(cacheSize)
		backend = "lru"
	}

	a := &Analyzer{
		cache:            cache,
		cacheSize:        cacheSize,
		fields:           cfg.fields,
		minimalVersion:   cfg.minimalVersion,
		showMatcherStats: cfg.showMatcherStats,
	}

	if cfg.delayed {
		// The first Parse/ParseHeaders call triggers ensureBuilt; any
		// failure there falls back to the untrimmed built-in rule set
		// (see DelayedInitialization's doc comment) rather than being
		// returned here, since there is no caller left to return it to.
	} else {
		store, pipeline, err := ruleset.Build(cfg.minimalVersion)
		if err != nil {
			return nil, newConfigError(err)
		}
		a.store, a.pipeline = store, pipeline
		a.built.Store(true)
	}

	if cfg.loggerRequested {
		opts := cfg.loggerOpts
		logStats := cfg.showMatcherStats && a.built.Load()
		if logStats {
			opts = append(append([]logger.Option(nil), opts...),
				logger.WithBuildStats(a.store.Len(), a.pipeline.Len(), backend))
		}
		a.logger = logger.New(opts...)
		if logStats {
			a.logger.Info("yauaa: analyzer built")
		}
	}

	for _, sample := range cfg.preheatSamples {
		a.Parse(sample)
	}

	return a, nil
}

// OptionsFromConfig converts an analyzerconfig.Config (loaded from the
// environment) into the equivalent Builder Options. It lives here, not in
// pkg/analyzerconfig, because analyzerconfig must not import this package
// and this package already imports analyzerconfig — the conversion can
// only live on one side of that edge.
func OptionsFromConfig(cfg analyzerconfig.Config) []Option {
	opts := []Option{
		CacheSize(cfg.CacheSize),
		WithLogger(logger.WithFormat(logger.Format(cfg.LogFormat))),
	}
	if cfg.ImmediateInit {
		opts = append(opts, ImmediateInitialization())
	} else {
		opts = append(opts, DelayedInitialization())
	}
	if cfg.MinimalVersion > 0 {
		opts = append(opts, ShowMinimalVersion(cfg.MinimalVersion))
	}
	if cfg.PreheatSamples > 0 {
		opts = append(opts, Preheat(cfg.PreheatSamples))
	}
	return opts
}
