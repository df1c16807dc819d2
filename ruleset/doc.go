// Package ruleset is the analyzer's built-in, compiled rule set: the
// concrete catalog of pkg/rule matchers and pkg/postprocess calculators
// that the root package's Builder compiles into a Store and Pipeline by
// default.
//
// It is split by concern, not by confidence tier, mirroring how a real
// rule file set grows: one file per product family (browsers.go,
// operatingsystems.go), one for the layout engine, one for the security
// and language sentinels the tokenizer recognizes at token level, one for
// Client-Hints-derived overrides, and one for the low-confidence
// catch-alls that fall back to pkg/heuristic's keyword classifiers when
// no specific matcher fired.
//
//	high-confidence product/OS/layout matchers   (>= confidenceHigh)
//	Client-Hints override matchers               (>  confidenceHigh, when present)
//	security/language sentinel matchers          (mid confidence, single purpose)
//	low-confidence heuristic catch-alls          (== confidenceLow)
//
// Build assembles all of it into the (*rule.Store, *postprocess.Pipeline)
// pair the root package's Builder consumes.
package ruleset

// Confidence tiers. Client-Hints overrides outrank plain UA string
// matchers for the same field purely through the confidence ordering, so
// no special-case code is needed; the low tier is intentionally far
// below every specific matcher so it only wins when nothing else
// proposed a value at all.
const (
	confidenceHigh       = 10000
	confidenceClientHint = 12000
	confidenceSentinel   = 9000
	confidenceLow        = 10
)
