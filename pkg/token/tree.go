// Package token turns a raw User-Agent string into a structured, positional
// token tree that matchers can address by (product index, comment index).
package token

// Comment is one entry of a product's parenthesized comment list. Bare
// comments ("Windows NT 10.0") have an empty Key; key=value or key:value
// comments ("rv:1.8.1.11") carry both.
type Comment struct {
	Key   string
	Value string

	// Products holds a nested product sequence when the comment's value
	// itself looks like a parenthesized product list, e.g. a Client Hints
	// full-version-list embedded as a comment. Usually empty.
	Products []Product
}

// Product is one `name[/version] (comment; comment; ...)` unit of the token
// tree, in original order.
type Product struct {
	Name     string
	Version  string
	Comments []Comment
}

// Tree is the full, ordered token tree for one raw input.
type Tree struct {
	Raw      string
	Products []Product

	// Hints carries an optional side-channel of arbitrary key/value data
	// alongside the parsed token tree, for matchers that need to address
	// data the tokenizer itself never parsed from raw text — the root
	// package populates this from Client Hints headers so that
	// Client-Hints-derived matchers are ordinary rule.Matcher values
	// evaluated through the same candidate-lookup/evaluate path as every
	// other matcher, rather than special-cased post-processing code.
	Hints map[string]string
}

// Hint looks up a side-channel value set via Hints. ok is false if t is
// nil, Hints is nil, or the key is absent.
func (t *Tree) Hint(key string) (string, bool) {
	if t == nil || t.Hints == nil {
		return "", false
	}
	v, ok := t.Hints[key]
	return v, ok
}

// Product returns the product at idx, or the zero Product if idx is out of
// range. Matchers are expected to treat out-of-range positions as "no
// match" rather than an error (spec: "a predicate with an index out of
// range is simply false").
func (t *Tree) Product(idx int) Product {
	if t == nil || idx < 0 || idx >= len(t.Products) {
		return Product{}
	}
	return t.Products[idx]
}

// Comment returns the comment at (productIdx, commentIdx), or the zero
// Comment if either index is out of range.
func (t *Tree) Comment(productIdx, commentIdx int) Comment {
	p := t.Product(productIdx)
	if commentIdx < 0 || commentIdx >= len(p.Comments) {
		return Comment{}
	}
	return p.Comments[commentIdx]
}

// HasWord reports whether word appears verbatim (case-sensitive) anywhere
// in the raw input. The rule store's inverted index uses this as its
// per-word presence check; it is intentionally a cheap substring scan
// rather than a tokenized-word match, matching spec.4.2's "false positives
// tolerated" contract.
func (t *Tree) HasWord(word string) bool {
	return containsFold(t.Raw, word)
}
