// Package rule holds the immutable, compiled matcher catalog the matcher
// engine evaluates. A Store is assembled once by Builder and frozen:
// Candidates looks up the superset of matchers whose required literal
// words are all present in an input, via a word -> matchers inverted
// index built at Compile time.
//
// pkg/rule never parses rule source itself — that concern (YAML rule
// authoring) is out of scope for this module. ruleset builds its
// compiled catalog directly against this package's Builder API.
package rule
