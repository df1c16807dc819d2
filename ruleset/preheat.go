package ruleset

import (
	"embed"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/preheat.yaml
var preheatFS embed.FS

// preheatCorpus is the decoded shape of testdata/preheat.yaml.
type preheatCorpus struct {
	Samples []string `yaml:"samples"`
}

// PreheatSamples returns the built-in sample corpus the Preheat(n)
// builder option draws from. Panics if the embedded fixture is malformed
// — that would be a packaging error caught by any test importing this
// package, never a runtime condition a caller needs to recover from.
func PreheatSamples() []string {
	raw, err := preheatFS.ReadFile("testdata/preheat.yaml")
	if err != nil {
		panic("ruleset: embedded preheat corpus missing: " + err.Error())
	}
	var corpus preheatCorpus
	if err := yaml.Unmarshal(raw, &corpus); err != nil {
		panic("ruleset: embedded preheat corpus malformed: " + err.Error())
	}
	return corpus.Samples
}
