package heuristic

import (
	"strings"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// treeContainsWord reports whether keyword (expected lowercase) appears,
// case-insensitively, in some product's name or version, or in some
// comment's key or value, anywhere in t — including comment values that
// themselves expand into a nested product list. Classification walks the
// fields the tokenizer already split out rather than flattening the tree
// back into one string and rescanning it, so a keyword only matches where
// the tokenizer found a distinct unit for it to live in.
func treeContainsWord(t *token.Tree, keyword string) bool {
	if t == nil {
		return false
	}
	for _, p := range t.Products {
		if productContainsWord(p, keyword) {
			return true
		}
	}
	return false
}

func productContainsWord(p token.Product, keyword string) bool {
	if foldContains(p.Name, keyword) || foldContains(p.Version, keyword) {
		return true
	}
	for _, c := range p.Comments {
		if foldContains(c.Key, keyword) || foldContains(c.Value, keyword) {
			return true
		}
		for _, sub := range c.Products {
			if productContainsWord(sub, keyword) {
				return true
			}
		}
	}
	return false
}

func foldContains(s, keyword string) bool {
	return strings.Contains(strings.ToLower(s), keyword)
}

// findProductNamed returns the first product anywhere in t — including
// product lists nested inside a comment value — whose Name matches name
// case-insensitively.
func findProductNamed(t *token.Tree, name string) (token.Product, bool) {
	if t == nil {
		return token.Product{}, false
	}
	for _, p := range t.Products {
		if found, ok := findNamedIn(p, name); ok {
			return found, true
		}
	}
	return token.Product{}, false
}

func findNamedIn(p token.Product, name string) (token.Product, bool) {
	if strings.EqualFold(p.Name, name) {
		return p, true
	}
	for _, c := range p.Comments {
		for _, sub := range c.Products {
			if found, ok := findNamedIn(sub, name); ok {
				return found, true
			}
		}
	}
	return token.Product{}, false
}

// anyCommentValue returns the first comment value anywhere in t that
// satisfies pred.
func anyCommentValue(t *token.Tree, pred func(string) bool) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, p := range t.Products {
		if v, ok := commentValueIn(p, pred); ok {
			return v, true
		}
	}
	return "", false
}

func commentValueIn(p token.Product, pred func(string) bool) (string, bool) {
	for _, c := range p.Comments {
		if pred(c.Value) {
			return c.Value, true
		}
		for _, sub := range c.Products {
			if v, ok := commentValueIn(sub, pred); ok {
				return v, true
			}
		}
	}
	return "", false
}
