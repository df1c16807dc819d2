package yauaa

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/clienthints"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/logger"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/match"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/parsecache"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/postprocess"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/resolve"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
	"github.com/dante-securestack/pom-mono-yauaa/ruleset"
)

// knownHeaders is the set of headers ParseHeaders recognizes, User-Agent
// plus every Client Hints header pkg/clienthints decodes. It doubles as
// the known-header allowlist parsecache.KeyForHeaders uses to build a
// canonical cache key: a header outside this set never affects the
// result, so it must never affect the key either.
var knownHeaders = []string{
	"User-Agent",
	clienthints.HeaderUA,
	clienthints.HeaderUAArch,
	clienthints.HeaderUABitness,
	clienthints.HeaderUAFullVersion,
	clienthints.HeaderUAFullVersions,
	clienthints.HeaderUAMobile,
	clienthints.HeaderUAModel,
	clienthints.HeaderUAPlatform,
	clienthints.HeaderUAPlatformVer,
	clienthints.HeaderUAWoW64,
}

// Analyzer parses User-Agent strings and Client Hints headers into
// field.Result values. An Analyzer is safe for concurrent use by
// multiple goroutines; construct one with NewBuilder.
type Analyzer struct {
	store            *rule.Store
	pipeline         *postprocess.Pipeline
	cache            parsecache.Store
	cacheSize        int
	fields           []field.Field
	logger           *slog.Logger
	minimalVersion   int
	showMatcherStats bool

	built     atomic.Bool
	buildOnce sync.Once
	destroyed atomic.Bool

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Parse classifies a raw User-Agent string, returning a Result with every
// field populated, either from the rule set or from its default
// sentinel. Parse never errors and never panics, even for nil-equivalent,
// empty, or adversarial input: it is total over string.
// Parse after Destroy still returns a usable Result (see Destroy's doc
// comment) rather than the zero value.
func (a *Analyzer) Parse(ua string) *field.Result {
	return a.parseCached(ua, nil, nil)
}

// ParseHeaders classifies a request's User-Agent header together with
// whatever Client Hints headers accompanied it. headers is matched
// case-insensitively, mirroring HTTP header semantics; only the headers
// named in knownHeaders (see its doc comment) affect the result.
func (a *Analyzer) ParseHeaders(headers map[string]string) *field.Result {
	ua, hints := a.splitHeaders(headers)
	return a.parseCached(ua, hints, headers)
}

// ParseField is a convenience wrapper around Parse that returns a single
// field's value directly, for callers that only need one field and would
// otherwise discard the rest of the Result. It still runs (and caches)
// the full parse: there is no narrower code path to take, since most
// fields are derived from shared post-processing state.
func (a *Analyzer) ParseField(ua string, f field.Field) string {
	return a.Parse(ua).Get(f)
}

// ParseHeadersField is ParseField's ParseHeaders counterpart.
func (a *Analyzer) ParseHeadersField(headers map[string]string, f field.Field) string {
	return a.ParseHeaders(headers).Get(f)
}

// CacheStats reports the number of Parse/ParseHeaders calls served from
// the parse cache versus computed fresh, since the Analyzer was built.
// With caching disabled (CacheSize(0)) every call counts as a miss.
func (a *Analyzer) CacheStats() (hits, misses uint64) {
	return a.hits.Load(), a.misses.Load()
}

// CacheLen reports the number of entries currently held in the parse
// cache.
func (a *Analyzer) CacheLen() int {
	return a.cache.Len()
}

// CacheSize reports the parse cache capacity this Analyzer was built
// with (0 means caching is disabled).
func (a *Analyzer) CacheSize() int {
	return a.cacheSize
}

// Destroy clears the parse cache and makes the Analyzer inert: every
// subsequent Parse/ParseHeaders call returns a Result of nothing but
// default sentinels instead of running the matching pipeline again. It
// does not invalidate Results already handed out (those are immutable
// and independent of the cache). Calling Parse after Destroy is a
// programmer error — logged, if a logger was supplied — but Parse stays
// total rather than panicking or returning nil. Destroy is
// safe to call more than once.
func (a *Analyzer) Destroy() {
	if a.destroyed.CompareAndSwap(false, true) {
		a.cache.Clear()
	}
}

// splitHeaders pulls the User-Agent value out of headers and decodes the
// rest into the token.Tree.Hints side-channel map the rule set's
// Client-Hints matchers read from.
func (a *Analyzer) splitHeaders(headers map[string]string) (string, map[string]string) {
	var ua string
	for k, v := range headers {
		if strings.EqualFold(k, "User-Agent") {
			ua = v
			break
		}
	}
	hints := clienthints.Parse(headers).ToMap()
	return ua, hints
}

// parseCached runs the cache-or-compute path for one (ua, hints) pair.
// Whenever hints is non-empty, the raw headers they were decoded from
// participate in the cache key via parsecache.KeyForHeaders so that the
// same User-Agent string with different Client Hints is never served a
// stale Result. Parse passes nil for both.
func (a *Analyzer) parseCached(ua string, hints, headers map[string]string) *field.Result {
	if a.destroyed.Load() {
		if a.logger != nil {
			a.logger.Warn("yauaa: parse called after Destroy, returning defaults", logger.Input(ua))
		}
		return field.NewMap().Freeze(ua, a.fields)
	}

	a.ensureBuilt()

	key := ua
	if len(hints) > 0 {
		key = "ch:" + ua + "\n" + parsecache.KeyForHeaders(headers, knownHeaders)
	}

	computed := false
	result := a.cache.GetOrCompute(key, func() *field.Result {
		computed = true
		return a.doParse(ua, hints)
	})
	if computed {
		a.misses.Add(1)
	} else {
		a.hits.Add(1)
	}
	return result
}

// doParse runs the uncached tokenize/candidates/evaluate/resolve/
// post-process pipeline for one input.
func (a *Analyzer) doParse(ua string, hints map[string]string) *field.Result {
	tree := token.Tokenize(ua)
	tree.Hints = hints

	proposals := match.EvaluateAll(a.store.Candidates(tree), tree)
	m := resolve.Resolve(proposals)
	if err := a.pipeline.Run(m); err != nil {
		// The built-in pipeline is validated acyclic at Build time
		// (NewPipeline would have failed and surfaced a ConfigError
		// already), and ensureBuilt's delayed-init fallback is a pipeline
		// NewPipeline validated the same way, so a Run failure is not
		// expected here. Logged rather than swallowed silently, since it
		// would indicate a real bug if it ever happened.
		if a.logger != nil {
			a.logger.Error("yauaa: post-processing failed, returning raw proposals", logger.Error(err))
		}
	}
	return m.Freeze(ua, a.fields)
}

// ensureBuilt performs the delayed rule-set/pipeline build on first use.
// It runs at most once: later calls (including concurrent ones during
// the first build) block on the same sync.Once and then observe built
// already true. A build failure here has no caller to return a
// ConfigError to, so it is logged (if a logger was supplied) and the
// Analyzer falls back to the built-in rule set and pipeline compiled
// without minimal-version trimming (ruleset.Build(0)) for the rest of its
// lifetime — every Parse still succeeds, with version fields untrimmed.
func (a *Analyzer) ensureBuilt() {
	if a.built.Load() {
		return
	}
	a.buildOnce.Do(func() {
		store, pipeline, err := ruleset.Build(a.minimalVersion)
		if err != nil {
			if a.logger != nil {
				a.logger.Error("yauaa: delayed build failed, falling back to the untrimmed rule set", logger.Error(err))
			}
			// minimalVersion 0 skips the only calculators whose ordering
			// can fail, so this always succeeds even when the configured
			// minimalVersion did not.
			store, pipeline, _ = ruleset.Build(0)
		}
		a.store, a.pipeline = store, pipeline
		if a.logger != nil && a.showMatcherStats {
			a.logger.Info("yauaa: analyzer built",
				slog.Int("matcher_count", a.store.Len()),
				slog.Int("calculator_count", a.pipeline.Len()),
			)
		}
		a.built.Store(true)
	})
}
