// Package resolve selects, for every field, the winning proposal among
// everything the matcher engine produced, breaking ties by rule load
// order, and fills in default sentinels for fields nothing proposed.
package resolve

import "github.com/dante-securestack/pom-mono-yauaa/pkg/field"

// Resolve collects proposals (expected in rule-load order, as produced by
// pkg/match.EvaluateAll) and returns a field.Map holding, for each field
// that received at least one non-zero-confidence proposal, the
// highest-confidence one — ties broken in favor of whichever proposal
// appeared earlier in proposals. Fields nothing proposed are left unset
// in the returned Map; Map.Get still reports their default sentinel.
func Resolve(proposals []field.Proposal) *field.Map {
	type winner struct {
		value      string
		confidence int
		set        bool
	}
	best := make(map[field.Field]winner)

	for _, p := range proposals {
		if p.Confidence <= 0 {
			continue
		}
		w, ok := best[p.Field]
		if !ok || p.Confidence > w.confidence {
			best[p.Field] = winner{value: p.Value, confidence: p.Confidence, set: true}
		}
		// Equal confidence: the first proposal encountered already won
		// and is kept, since proposals arrive in load order.
	}

	m := field.NewMap()
	for f, w := range best {
		if w.set {
			m.Set(f, w.value)
		}
	}
	return m
}
