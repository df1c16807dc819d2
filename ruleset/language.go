package ruleset

import (
	"regexp"
	"strings"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// localeCommentPattern matches a bare comment that looks like a BCP-47
// language tag on its own (e.g. "en-US", "nl", "pt-BR") and nothing else,
// which is how older browsers advertised their UI locale as a standalone
// comment entry rather than a key=value pair.
var localeCommentPattern = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z]{2,4})?$`)

// addLanguageMatcher registers the AgentLanguageCode sentinel matcher. No
// required words: the comment this looks for varies by locale, so there
// is no fixed literal to index on.
func addLanguageMatcher(b *rule.Builder) {
	b.Add("agent-language-code", nil,
		func(t *token.Tree) bool {
			_, ok := localeComment(t)
			return ok
		},
		rule.Extract{Field: field.AgentLanguageCode, Confidence: confidenceSentinel, Value: func(t *token.Tree) (string, bool) {
			v, ok := localeComment(t)
			if !ok {
				return "", false
			}
			return strings.ToLower(v), true
		}},
	)
}

func localeComment(t *token.Tree) (string, bool) {
	return findBareComment(t, localeCommentPattern.MatchString)
}
