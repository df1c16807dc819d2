package ruleset

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// addHackerMatcher registers the empty-input sentinel: an empty or
// absent user agent is an ordinary, if unusual, tokenized input (an
// empty token tree), and is classified by an ordinary matcher like
// everything else rather than a special code path.
//
// AgentClass is deliberately left to the ClassFromName post-processor
// (see pipeline.go's agentClassTable, which maps "Hacker" -> "Hacker")
// rather than proposed here directly, so there is exactly one place that
// owns AgentClass.
func addHackerMatcher(b *rule.Builder) {
	b.Add("hacker-empty-input", nil,
		func(t *token.Tree) bool { return len(t.Products) == 0 },
		rule.Extract{Field: field.AgentName, Confidence: confidenceSentinel, Value: valueConst("Hacker")},
	)
}
