// Package yauaa parses HTTP User-Agent strings and Client Hints headers
// into a structured set of named fields describing the device, operating
// system, layout engine and agent (browser/application) that issued a
// request.
//
// The package is built from five immutable, composable layers: a
// tokenizer (pkg/token) splits a raw string into a positional token tree;
// a compiled rule store (pkg/rule), populated here by the built-in
// catalog in package ruleset, proposes (field, value, confidence) tuples
// for candidate matchers; the matcher engine (pkg/match) evaluates those
// candidates; the field resolver (pkg/resolve) picks the highest-confidence
// proposal per field; and an ordered post-processor pipeline
// (pkg/postprocess) derives secondary fields such as AgentNameVersion. A
// bounded, thread-safe parse cache (pkg/parsecache) sits in front of the
// whole pipeline.
//
// Basic usage:
//
//	a, err := yauaa.NewBuilder().Build()
//	if err != nil {
//		// ConfigError: malformed built-in rule set or post-processor graph.
//	}
//	defer a.Destroy()
//
//	result := a.Parse("Mozilla/5.0 (Windows NT 10.0; Win64; x64) ... Chrome/100.0.4896.127 Safari/537.36")
//	fmt.Println(result.Get(field.AgentName), result.Get(field.AgentVersion))
//
// Client Hints form:
//
//	result := a.ParseHeaders(map[string]string{
//		"User-Agent":                headerUA,
//		"Sec-Ch-Ua-Platform":         `"Linux"`,
//		"Sec-Ch-Ua-Platform-Version": `"5.13.0"`,
//	})
//
// Parse never errors and never panics: an empty, nil-equivalent, or
// adversarial input is tokenized and classified like any other, typically
// landing on the built-in rule set's "Hacker" sentinel rather than a
// runtime failure. Only Builder.Build can fail, and only for a malformed
// rule/post-processor configuration — a construction-time condition, never
// a parse-time one.
package yauaa
