// Package match implements the matcher engine: evaluating one compiled
// matcher against a tokenized input and turning a successful match into
// field proposals.
package match

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// Evaluate runs matcher's predicate against tree and, on success, returns
// one proposal per extract clause whose value expression reports ok. It
// never errors: a well-formed compiled matcher cannot fail at evaluation
// time, and an extract whose addressed position is absent from this
// particular input simply contributes no proposal rather than a
// default-valued one.
func Evaluate(matcher *rule.Matcher, tree *token.Tree) []field.Proposal {
	if !matcher.Matches(tree) {
		return nil
	}
	var proposals []field.Proposal
	for _, ex := range matcher.Extracts() {
		value, ok := ex.Value(tree)
		if !ok {
			continue
		}
		proposals = append(proposals, field.Proposal{
			Field:      ex.Field,
			Value:      value,
			Confidence: ex.Confidence,
		})
	}
	return proposals
}

// EvaluateAll runs Evaluate over every candidate matcher in candidates, in
// the order given, concatenating their proposals. Candidates are expected
// to already be in rule-load order (as returned by rule.Store.Candidates),
// so the returned proposals preserve load order for the resolver's
// tie-break.
func EvaluateAll(candidates []*rule.Matcher, tree *token.Tree) []field.Proposal {
	var all []field.Proposal
	for _, m := range candidates {
		all = append(all, Evaluate(m, tree)...)
	}
	return all
}
