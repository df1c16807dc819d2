package ruleset

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// confidenceChromiumDerivative outranks the plain Chrome matcher: every
// Chromium-derivative browser's UA string also contains a literal
// "Chrome/<version>" product, so without a confidence edge the two
// matchers would tie and fall back to load order, which is far more
// fragile to reorder safely than a documented confidence gap.
const confidenceChromiumDerivative = confidenceHigh + 500

// addBrowserMatchers registers the explicit, high-confidence product
// matchers for the browser families the built-in rule set recognizes by
// name rather than leaving to the pkg/heuristic catch-all.
func addBrowserMatchers(b *rule.Builder) {
	b.Add("firefox", []string{"Firefox"},
		func(t *token.Tree) bool { return hasProduct(t, "Firefox") },
		rule.Extract{Field: field.AgentName, Confidence: confidenceHigh, Value: valueConst("Firefox")},
		rule.Extract{Field: field.AgentVersion, Confidence: confidenceHigh, Value: productVersion("Firefox")},
	)

	b.Add("chrome", []string{"Chrome"},
		func(t *token.Tree) bool { return hasProduct(t, "Chrome") },
		rule.Extract{Field: field.AgentName, Confidence: confidenceHigh, Value: valueConst("Chrome")},
		rule.Extract{Field: field.AgentVersion, Confidence: confidenceHigh, Value: productVersion("Chrome")},
	)

	b.Add("edge-chromium", []string{"Edg"},
		func(t *token.Tree) bool { return hasProduct(t, "Edg") },
		rule.Extract{Field: field.AgentName, Confidence: confidenceChromiumDerivative, Value: valueConst("Microsoft Edge")},
		rule.Extract{Field: field.AgentVersion, Confidence: confidenceChromiumDerivative, Value: productVersion("Edg")},
	)

	b.Add("opera-chromium", []string{"OPR"},
		func(t *token.Tree) bool { return hasProduct(t, "OPR") },
		rule.Extract{Field: field.AgentName, Confidence: confidenceChromiumDerivative, Value: valueConst("Opera")},
		rule.Extract{Field: field.AgentVersion, Confidence: confidenceChromiumDerivative, Value: productVersion("OPR")},
	)

	// Safari's product token only carries the WebKit build number; the
	// human-readable browser version lives in a separate "Version"
	// product. Excluded whenever any Chromium-derivative product is also
	// present, since every one of those also ships an (old, misleading)
	// "Safari/<webkit-build>" product for compatibility sniffing.
	b.Add("safari", []string{"Safari", "Version"},
		func(t *token.Tree) bool {
			if !hasProduct(t, "Safari") || !hasProduct(t, "Version") {
				return false
			}
			for _, derivative := range []string{"Chrome", "Chromium", "Edg", "OPR"} {
				if hasProduct(t, derivative) {
					return false
				}
			}
			return true
		},
		rule.Extract{Field: field.AgentName, Confidence: confidenceHigh, Value: valueConst("Safari")},
		rule.Extract{Field: field.AgentVersion, Confidence: confidenceHigh, Value: productVersion("Version")},
	)
}

// productVersion returns a ValueFunc extracting the version of the named
// product, succeeding only when that product is present.
func productVersion(name string) func(*token.Tree) (string, bool) {
	return func(t *token.Tree) (string, bool) {
		p, ok := findProduct(t, name)
		if !ok || p.Version == "" {
			return "", false
		}
		return p.Version, true
	}
}
