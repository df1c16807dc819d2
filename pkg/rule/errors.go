package rule

import "errors"

// Build-time error sentinels. The root package wraps these into its own
// ConfigError when compiling the built-in rule set; pkg/rule has no
// dependency on the root package, so it exposes plain sentinels instead.
var (
	// ErrNoExtracts is returned when a matcher was declared with no
	// extract clauses at all — it could never contribute a proposal.
	ErrNoExtracts = errors.New("rule: matcher declared with no extract clauses")

	// ErrEmptyMatcherName is returned when Add is called with an empty
	// diagnostic name.
	ErrEmptyMatcherName = errors.New("rule: matcher name must not be empty")

	// ErrDuplicateMatcherName is returned when two matchers in the same
	// Builder share a name, which would make build-time diagnostics
	// ambiguous.
	ErrDuplicateMatcherName = errors.New("rule: duplicate matcher name")
)
