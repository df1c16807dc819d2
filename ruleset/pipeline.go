package ruleset

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/postprocess"
)

// agentClassTable backs the AgentName -> AgentClass calculator. Every
// recognized browser name maps to "Browser"; the empty-input sentinel
// maps to "Hacker" so that classification, like the name itself, comes
// from the standard rule path rather than special code. Anything
// unlisted (an unrecognized catch-all name) defaults to "Unknown".
var agentClassTable = map[string]string{
	"Firefox":            "Browser",
	"Chrome":             "Browser",
	"Microsoft Edge":     "Browser",
	"Opera":              "Browser",
	"Safari":             "Browser",
	"Internet Explorer":  "Browser",
	"Samsung Internet":   "Browser",
	"UC Browser":         "Browser",
	"QQ Browser":         "Browser",
	"Huawei Browser":     "Browser",
	"Vivo Browser":       "Browser",
	"Mi Browser":         "Browser",
	"Brave":              "Browser",
	"Vivaldi":            "Browser",
	"Yandex Browser":     "Browser",
	"Hacker":             "Hacker",
}

// operatingSystemClassTable backs the OperatingSystemName ->
// OperatingSystemClass calculator.
var operatingSystemClassTable = map[string]string{
	"Windows NT":    "Desktop",
	"Windows":       "Desktop",
	"Windows Phone": "Mobile",
	"Mac OS X":      "Desktop",
	"Linux":         "Desktop",
	"Chrome OS":     "Desktop",
	"Android":       "Mobile",
	"iOS":           "Mobile",
	"HarmonyOS":     "Mobile",
	"Fire OS":       "Mobile",
}

// layoutEngineClassTable backs the LayoutEngineName -> LayoutEngineClass
// calculator. Every layout engine the rule set recognizes belongs to a
// browser, so every entry maps to the single class "Browser";
// unrecognized names default to "Unknown".
var layoutEngineClassTable = map[string]string{
	"Gecko":  "Browser",
	"WebKit": "Browser",
	"Blink":  "Browser",
}

// buildPipeline assembles the built-in post-processor pipeline. Order
// matters: class-from-name lookups and language expansion only need the
// fields the resolver already finalized; composition and version-major
// calculators need each other's target fields declared in dependency
// order; minimalVersionComponents, when > 0, adds the trimming calculator
// last for every version field it touches so every other reader sees the
// untrimmed value first (see pkg/postprocess.MinimalVersionTrim's doc and
// DESIGN.md's note on the self-transform ordering fix).
func buildPipeline(minimalVersionComponents int) (*postprocess.Pipeline, error) {
	calculators := []postprocess.Calculator{
		postprocess.ClassFromName(field.AgentName, field.AgentClass, agentClassTable, field.Unknown),
		postprocess.ClassFromName(field.OperatingSystemName, field.OperatingSystemClass, operatingSystemClassTable, field.Unknown),
		postprocess.ClassFromName(field.LayoutEngineName, field.LayoutEngineClass, layoutEngineClassTable, field.Unknown),

		postprocess.VersionMajorOf(field.AgentVersion, field.AgentVersionMajor),
		postprocess.VersionMajorOf(field.OperatingSystemVersion, field.OperatingSystemVersionMajor),
		postprocess.VersionMajorOf(field.LayoutEngineVersion, field.LayoutEngineVersionMajor),

		postprocess.Composition(field.AgentName, field.AgentVersion, field.AgentNameVersion),
		postprocess.Composition(field.AgentName, field.AgentVersionMajor, field.AgentNameVersionMajor),
		postprocess.Composition(field.OperatingSystemName, field.OperatingSystemVersion, field.OperatingSystemNameVersion),
		postprocess.Composition(field.OperatingSystemName, field.OperatingSystemVersionMajor, field.OperatingSystemNameVersionMajor),
		postprocess.Composition(field.LayoutEngineName, field.LayoutEngineVersion, field.LayoutEngineNameVersion),
		postprocess.Composition(field.LayoutEngineName, field.LayoutEngineVersionMajor, field.LayoutEngineNameVersionMajor),

		postprocess.LanguageExpansion(field.AgentLanguageCode, field.AgentLanguage),
	}

	if minimalVersionComponents > 0 {
		calculators = append(calculators,
			postprocess.MinimalVersionTrim(field.AgentVersion, minimalVersionComponents),
			postprocess.MinimalVersionTrim(field.OperatingSystemVersion, minimalVersionComponents),
			postprocess.MinimalVersionTrim(field.LayoutEngineVersion, minimalVersionComponents),
		)
	}

	return postprocess.NewPipeline(calculators...)
}
