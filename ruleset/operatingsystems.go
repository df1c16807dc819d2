package ruleset

import (
	"strings"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// windowsNTMarketingNames maps the "Windows NT <major.minor>" literal the
// tokenizer preserves verbatim to the marketing name Microsoft actually
// sold that release under — the underlying NT version number is not
// user-facing and would be a worse field value than the name people
// recognize.
var windowsNTMarketingNames = map[string]string{
	"5.0":  "2000",
	"5.1":  "XP",
	"5.2":  "XP x64 Edition",
	"6.0":  "Vista",
	"6.1":  "7",
	"6.2":  "8",
	"6.3":  "8.1",
	"10.0": "10",
}

// addOperatingSystemMatchers registers the explicit, high-confidence OS
// matchers. Desktop-vs-mobile DeviceClass is left to the low-confidence
// heuristic catch-all (catchall.go); these matchers only own
// OperatingSystem{Name,Version}.
func addOperatingSystemMatchers(b *rule.Builder) {
	b.Add("windows-nt", []string{"Windows", "NT"},
		func(t *token.Tree) bool {
			_, ok := windowsNTVersion(t)
			return ok
		},
		rule.Extract{Field: field.OperatingSystemName, Confidence: confidenceHigh, Value: valueConst("Windows NT")},
		rule.Extract{Field: field.OperatingSystemVersion, Confidence: confidenceHigh, Value: windowsNTMarketingVersion},
	)

	b.Add("android", []string{"Android"},
		func(t *token.Tree) bool { return t.HasWord("Android") },
		rule.Extract{Field: field.OperatingSystemName, Confidence: confidenceHigh, Value: valueConst("Android")},
		rule.Extract{Field: field.OperatingSystemVersion, Confidence: confidenceHigh, Value: androidVersion},
	)

	b.Add("linux", []string{"Linux"},
		func(t *token.Tree) bool { return t.HasWord("Linux") && !t.HasWord("Android") },
		rule.Extract{Field: field.OperatingSystemName, Confidence: confidenceHigh, Value: valueConst("Linux")},
	)

	b.Add("macos", []string{"Mac", "OS", "X"},
		func(t *token.Tree) bool {
			_, ok := macOSVersion(t)
			return ok
		},
		rule.Extract{Field: field.OperatingSystemName, Confidence: confidenceHigh, Value: valueConst("Mac OS X")},
		rule.Extract{Field: field.OperatingSystemVersion, Confidence: confidenceHigh, Value: macOSVersionValue},
	)

	b.Add("ios", []string{"like", "Mac", "OS", "X"},
		func(t *token.Tree) bool {
			return (hasProduct(t, "iPhone") || hasProduct(t, "iPad") || t.HasWord("iPhone") || t.HasWord("iPad")) &&
				t.HasWord("like Mac OS X")
		},
		rule.Extract{Field: field.OperatingSystemName, Confidence: confidenceHigh, Value: valueConst("iOS")},
		rule.Extract{Field: field.OperatingSystemVersion, Confidence: confidenceHigh, Value: iosVersion},
	)

	b.Add("cpu-x86-64", []string{"x86_64"},
		func(t *token.Tree) bool { return t.HasWord("x86_64") },
		rule.Extract{Field: field.DeviceCpu, Confidence: confidenceHigh, Value: valueConst("Intel x86_64")},
	)
}

// windowsNTVersion returns the raw "<major.minor>" NT version number from
// a bare "Windows NT <version>" comment, if one is present.
func windowsNTVersion(t *token.Tree) (string, bool) {
	v, ok := findBareComment(t, func(value string) bool {
		return strings.HasPrefix(value, "Windows NT ")
	})
	if !ok {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(v, "Windows NT ")), true
}

func windowsNTMarketingVersion(t *token.Tree) (string, bool) {
	ver, ok := windowsNTVersion(t)
	if !ok {
		return "", false
	}
	name, ok := windowsNTMarketingNames[ver]
	if !ok {
		return ver, true
	}
	return name, true
}

// androidVersion extracts the "<version>" out of a bare "Android
// <version>" comment.
func androidVersion(t *token.Tree) (string, bool) {
	v, ok := findBareComment(t, func(value string) bool {
		return strings.HasPrefix(value, "Android ")
	})
	if !ok {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(v, "Android ")), true
}

// macOSVersion returns the raw underscore-separated version out of a bare
// "Intel Mac OS X 10_15_7" (or similar) comment.
func macOSVersion(t *token.Tree) (string, bool) {
	return findBareComment(t, func(value string) bool {
		return strings.Contains(value, "Mac OS X") && !strings.Contains(value, "like Mac OS X")
	})
}

func macOSVersionValue(t *token.Tree) (string, bool) {
	raw, ok := macOSVersion(t)
	if !ok {
		return "", false
	}
	idx := strings.Index(raw, "Mac OS X")
	rest := strings.TrimSpace(raw[idx+len("Mac OS X"):])
	if rest == "" {
		return "", false
	}
	return strings.ReplaceAll(rest, "_", "."), true
}

// iosVersion extracts the "<version>" out of a bare "CPU iPhone OS
// 15_0 like Mac OS X"-shaped comment.
func iosVersion(t *token.Tree) (string, bool) {
	v, ok := findBareComment(t, func(value string) bool {
		return strings.Contains(value, "like Mac OS X")
	})
	if !ok {
		return "", false
	}
	for _, f := range strings.Fields(v) {
		if strings.Contains(f, "_") {
			return strings.ReplaceAll(f, "_", "."), true
		}
	}
	return "", false
}
