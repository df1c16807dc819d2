package ruleset

import (
	"strings"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// findProduct returns the first product in t whose Name matches name
// case-sensitively, searching in tree order.
func findProduct(t *token.Tree, name string) (token.Product, bool) {
	for _, p := range t.Products {
		if p.Name == name {
			return p, true
		}
	}
	return token.Product{}, false
}

// hasProduct reports whether a product named name exists anywhere in t.
func hasProduct(t *token.Tree, name string) bool {
	_, ok := findProduct(t, name)
	return ok
}

// eachBareComment calls fn for every bare (keyless) comment in t, across
// every product, in tree order, stopping early if fn returns true.
func eachBareComment(t *token.Tree, fn func(value string) bool) {
	for _, p := range t.Products {
		for _, c := range p.Comments {
			if c.Key != "" {
				continue
			}
			if fn(c.Value) {
				return
			}
		}
	}
}

// findBareComment returns the first bare comment value anywhere in t for
// which match reports true.
func findBareComment(t *token.Tree, match func(value string) bool) (string, bool) {
	var found string
	var ok bool
	eachBareComment(t, func(value string) bool {
		if match(value) {
			found, ok = value, true
			return true
		}
		return false
	})
	return found, ok
}

// findKeyedComment returns the value of the first comment anywhere in t
// whose Key matches key (case-insensitive).
func findKeyedComment(t *token.Tree, key string) (string, bool) {
	for _, p := range t.Products {
		for _, c := range p.Comments {
			if c.Key != "" && strings.EqualFold(c.Key, key) {
				return c.Value, true
			}
		}
	}
	return "", false
}

// valueConst returns a ValueFunc that always succeeds with a fixed value,
// for extract clauses whose value doesn't depend on the matched position
// (e.g. a fixed marketing name once the predicate has already pinned down
// which case applies).
func valueConst(v string) func(*token.Tree) (string, bool) {
	return func(*token.Tree) (string, bool) { return v, true }
}
