package ruleset

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// securityLabels maps the legacy crypto-grade sentinel the tokenizer
// recognizes to the human-readable AgentSecurity value.
var securityLabels = map[string]string{
	token.SecurityStrong: "Strong security",
	token.SecurityWeak:   "Weak security",
	token.SecurityNone:   "No security",
}

// addSecurityMatcher registers the AgentSecurity sentinel matcher. It has
// no required words — the sentinel is a single letter, too short to
// index usefully — so it is always a candidate and relies entirely on
// its predicate, same as the low-confidence catch-alls but at a much
// higher confidence since it is authoritative when present.
func addSecurityMatcher(b *rule.Builder) {
	b.Add("agent-security", nil,
		func(t *token.Tree) bool { return t.SecurityToken() != "" },
		rule.Extract{Field: field.AgentSecurity, Confidence: confidenceSentinel, Value: func(t *token.Tree) (string, bool) {
			label, ok := securityLabels[t.SecurityToken()]
			return label, ok
		}},
	)
}
