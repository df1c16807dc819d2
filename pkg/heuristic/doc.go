// Package heuristic provides the keyword-based fallback classifiers that back
// the default rule set's catch-all matchers.
//
// Every field the rule store can resolve is first attempted by explicit,
// high-confidence matchers compiled from known product/version signatures
// (see package ruleset). Those matchers cannot cover every client a pipeline
// will ever see, so the default rule set also registers a handful of very
// low-confidence matchers whose Value expressions call into this package:
// ParseDeviceType, GetDeviceModel, ParseOS and ParseBrowser. Because
// confidence strictly orders proposals for a field (see pkg/resolve), these
// heuristics only ever surface when nothing more specific fired.
//
// Classification reads the token tree's already-split product names,
// versions, and comments directly rather than re-flattening it back into a
// single string: a keyword only ever matches within the field the tokenizer
// put it in, and a browser's version comes straight off its product's
// Version rather than a regex re-extracting it from raw text.
package heuristic
