package ruleset

import (
	"strings"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// addClientHintsMatchers registers the Client-Hints-derived override
// matchers. They address token.Tree.Hints — the side-channel the root
// package populates from parsed Sec-Ch-Ua-* headers — rather than the
// tokenized product/comment tree, but are otherwise ordinary matchers
// evaluated through the same candidate-lookup/evaluate/resolve path as
// every UA-string matcher. Client Hints override plain UA-derived values
// purely through a higher confidence tier (confidenceClientHint), never
// a special code path.
func addClientHintsMatchers(b *rule.Builder) {
	b.Add("clienthints-platform", nil,
		hintPresent("platform"),
		rule.Extract{Field: field.OperatingSystemName, Confidence: confidenceClientHint, Value: hintValue("platform")},
	)

	b.Add("clienthints-platform-version", nil,
		hintPresent("platform_version"),
		rule.Extract{Field: field.OperatingSystemVersion, Confidence: confidenceClientHint, Value: hintValue("platform_version")},
	)

	b.Add("clienthints-model", nil,
		hintPresent("model"),
		rule.Extract{Field: field.DeviceName, Confidence: confidenceClientHint, Value: hintValue("model")},
	)

	b.Add("clienthints-bitness", nil,
		hintPresent("bitness"),
		rule.Extract{Field: field.DeviceCpuBits, Confidence: confidenceClientHint, Value: hintValue("bitness")},
	)

	b.Add("clienthints-arch", nil,
		hintPresent("arch"),
		rule.Extract{Field: field.DeviceCpu, Confidence: confidenceClientHint, Value: archMarketingName},
	)

	b.Add("clienthints-mobile", nil,
		func(t *token.Tree) bool {
			v, ok := t.Hint("mobile")
			return ok && v == "?1"
		},
		rule.Extract{Field: field.DeviceClass, Confidence: confidenceClientHint, Value: valueConst("Mobile")},
	)

	b.Add("clienthints-brand", nil,
		hintPresent("brand"),
		rule.Extract{Field: field.AgentName, Confidence: confidenceClientHint, Value: hintValue("brand")},
		rule.Extract{Field: field.AgentVersion, Confidence: confidenceClientHint, Value: hintValue("brand_version")},
	)
}

// hintPresent returns a Predicate true when the named side-channel key is
// present and non-empty.
func hintPresent(key string) func(*token.Tree) bool {
	return func(t *token.Tree) bool {
		v, ok := t.Hint(key)
		return ok && v != ""
	}
}

// hintValue returns a ValueFunc reading the named side-channel key.
func hintValue(key string) func(*token.Tree) (string, bool) {
	return func(t *token.Tree) (string, bool) {
		v, ok := t.Hint(key)
		if !ok || v == "" {
			return "", false
		}
		return v, true
	}
}

// archMarketingName maps the raw Sec-Ch-Ua-Arch token to the marketing
// CPU name the rest of the rule set uses, falling back to the raw value
// title-cased when the architecture isn't one of the common ones.
func archMarketingName(t *token.Tree) (string, bool) {
	arch, ok := t.Hint("arch")
	if !ok || arch == "" {
		return "", false
	}
	bitness, _ := t.Hint("bitness")
	switch strings.ToLower(arch) {
	case "x86":
		if bitness == "64" {
			return "Intel x86_64", true
		}
		return "Intel x86", true
	case "arm":
		if bitness == "64" {
			return "ARM64", true
		}
		return "ARM", true
	default:
		return strings.ToUpper(arch[:1]) + arch[1:], true
	}
}
