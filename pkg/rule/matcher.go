// Package rule is the immutable, compiled catalog of matchers the matcher
// engine (pkg/match) evaluates against a tokenized input. A Store is built
// once via Builder and frozen; concurrent reads afterward need no
// synchronization.
package rule

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// Predicate reports whether a compiled matcher applies to a tokenized
// input. A nil Predicate always matches (used by catch-all matchers).
type Predicate func(t *token.Tree) bool

// ValueFunc extracts the string value a matched position contributes for
// one field. ok is false when the position the matcher addresses is
// absent from this particular input, even though the matcher's predicate
// passed overall (e.g. an optional secondary comment).
type ValueFunc func(t *token.Tree) (value string, ok bool)

// Extract binds one field to a confidence weight and the value expression
// that computes it once a matcher's predicate has passed.
type Extract struct {
	Field      field.Field
	Confidence int
	Value      ValueFunc
}

// Matcher is one compiled, immutable rule: required literal words for
// indexed candidate lookup, a predicate narrowing it further, and the
// extract clauses it fires on success.
type Matcher struct {
	id            int
	name          string
	requiredWords []string
	predicate     Predicate
	extracts      []Extract
}

// ID returns the matcher's position in its Store's load order, which is
// also the tie-break order the field resolver uses for equal-confidence
// proposals.
func (m *Matcher) ID() int { return m.id }

// Name is a human-readable diagnostic label; it plays no role in matching.
func (m *Matcher) Name() string { return m.name }

// RequiredWords lists the literal substrings that must all be present in
// the raw input for this matcher to be a candidate at all.
func (m *Matcher) RequiredWords() []string { return m.requiredWords }

// Matches reports whether this matcher's predicate passes against t. A
// matcher with a nil predicate always matches (subject to having been
// selected as a candidate in the first place).
func (m *Matcher) Matches(t *token.Tree) bool {
	return m.predicate == nil || m.predicate(t)
}

// Extracts returns this matcher's extract clauses, in declaration order.
func (m *Matcher) Extracts() []Extract { return m.extracts }
