package ruleset

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// addLayoutEngineMatchers registers the explicit layout-engine matchers.
// "like Gecko" is a comment-level sentinel the tokenizer recognizes (see
// pkg/token.IsLikeGecko) and never a product by itself, so a plain
// product-name match for "Gecko" never false-positives on it.
func addLayoutEngineMatchers(b *rule.Builder) {
	b.Add("gecko", []string{"Gecko"},
		func(t *token.Tree) bool { return hasProduct(t, "Gecko") },
		rule.Extract{Field: field.LayoutEngineName, Confidence: confidenceHigh, Value: valueConst("Gecko")},
		rule.Extract{Field: field.LayoutEngineVersion, Confidence: confidenceHigh, Value: geckoEngineVersion},
	)

	b.Add("webkit", []string{"AppleWebKit"},
		func(t *token.Tree) bool {
			return hasProduct(t, "AppleWebKit") && !isBlinkDerivative(t)
		},
		rule.Extract{Field: field.LayoutEngineName, Confidence: confidenceHigh, Value: valueConst("WebKit")},
		rule.Extract{Field: field.LayoutEngineVersion, Confidence: confidenceHigh, Value: productVersion("AppleWebKit")},
	)

	b.Add("blink", []string{"AppleWebKit"},
		func(t *token.Tree) bool {
			return hasProduct(t, "AppleWebKit") && isBlinkDerivative(t)
		},
		rule.Extract{Field: field.LayoutEngineName, Confidence: confidenceHigh, Value: valueConst("Blink")},
		rule.Extract{Field: field.LayoutEngineVersion, Confidence: confidenceHigh, Value: productVersion("AppleWebKit")},
	)
}

// geckoEngineVersion prefers the "rv:" comment value over the Gecko
// product's own version field: the latter is a build/release date
// ("Gecko/20071127"), while "rv:1.8.1.11" carries the actual engine
// version browsers historically duplicated it from.
func geckoEngineVersion(t *token.Tree) (string, bool) {
	if v, ok := findKeyedComment(t, "rv"); ok && v != "" {
		return v, true
	}
	return productVersion("Gecko")(t)
}

// isBlinkDerivative reports whether t carries a product from one of the
// Blink-based browsers, which all ship an AppleWebKit product for
// compatibility sniffing despite not running WebKit itself.
func isBlinkDerivative(t *token.Tree) bool {
	for _, name := range []string{"Chrome", "Edg", "OPR"} {
		if hasProduct(t, name) {
			return true
		}
	}
	return false
}
