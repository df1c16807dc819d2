package ruleset

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/postprocess"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
)

// Build compiles the built-in matcher catalog and post-processor
// pipeline the root package's Builder uses by default. minimalVersionComponents
// enables the MinimalVersionTrim calculators when positive (the
// showMinimalVersion builder option); 0 leaves versions untrimmed.
func Build(minimalVersionComponents int) (*rule.Store, *postprocess.Pipeline, error) {
	b := rule.NewBuilder()

	addBrowserMatchers(b)
	addOperatingSystemMatchers(b)
	addLayoutEngineMatchers(b)
	addSecurityMatcher(b)
	addLanguageMatcher(b)
	addClientHintsMatchers(b)
	addHackerMatcher(b)
	addCatchAllMatchers(b)

	store, err := b.Compile()
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := buildPipeline(minimalVersionComponents)
	if err != nil {
		return nil, nil, err
	}

	return store, pipeline, nil
}
