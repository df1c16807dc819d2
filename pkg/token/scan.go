package token

import "strings"

// Tokenize converts a raw User-Agent (or Client-Hints-derived synthetic)
// string into a Tree. It never errors and never panics: malformed input
// (unbalanced parentheses or quotes, stray separators, empty string) is
// handled defensively by closing whatever is still open at end of input,
// matching spec.4.1's totality requirement.
func Tokenize(raw string) *Tree {
	s := &scanner{src: raw}
	products := s.scanProducts(false)
	return &Tree{Raw: raw, Products: products}
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
}

// scanProducts reads a whitespace-separated sequence of `name[/version]
// (comments)` units. When insideComment is true it stops at the matching
// ')' rather than end of input, letting nested product lists inside a
// comment value reuse this same loop.
func (s *scanner) scanProducts(insideComment bool) []Product {
	var products []Product
	for {
		s.skipSpace()
		if s.eof() {
			return products
		}
		if insideComment && s.peek() == ')' {
			return products
		}
		p := s.scanProduct()
		if p.Name == "" && len(p.Comments) == 0 {
			// Nothing consumed (e.g. a stray separator) — advance to avoid
			// looping forever on unexpected input.
			s.pos++
			continue
		}
		products = append(products, p)
	}
}

// scanProduct reads one `name[/version]` token followed by an optional
// parenthesized comment group.
func (s *scanner) scanProduct() Product {
	name := s.scanBareWord()
	var version string
	if s.peek() == '/' {
		s.pos++
		version = s.scanBareWord()
	}
	var comments []Comment
	s.skipSpace()
	if s.peek() == '(' {
		s.pos++
		comments = s.scanCommentList()
		if s.peek() == ')' {
			s.pos++
		}
		// unbalanced '(' — scanCommentList already consumed to end of
		// input defensively, nothing further to close.
	}
	return Product{Name: name, Version: version, Comments: comments}
}

// scanBareWord reads a run of non-space, non-paren, non-slash characters,
// honoring a quoted substring as a single unit.
func (s *scanner) scanBareWord() string {
	var b strings.Builder
	for !s.eof() {
		c := s.peek()
		if c == '"' {
			b.WriteString(s.scanQuoted())
			continue
		}
		if isSpace(c) || c == '(' || c == ')' || c == '/' {
			break
		}
		b.WriteByte(c)
		s.pos++
	}
	return b.String()
}

// scanQuoted reads a double-quoted string, including the quotes consumed
// but not emitted. An unterminated quote is closed at end of input.
func (s *scanner) scanQuoted() string {
	s.pos++ // opening quote
	start := s.pos
	for !s.eof() && s.peek() != '"' {
		s.pos++
	}
	text := s.src[start:s.pos]
	if !s.eof() {
		s.pos++ // closing quote
	}
	return text
}

// scanCommentList reads ';'- or ','-separated comment segments up to (but
// not consuming) the closing ')'. Separators nested inside a quoted string
// or a further parenthesized group are not split on.
func (s *scanner) scanCommentList() []Comment {
	var comments []Comment
	for {
		seg := s.scanCommentSegment()
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			comments = append(comments, parseCommentSegment(trimmed))
		}
		s.skipSpace()
		if s.eof() || s.peek() == ')' {
			return comments
		}
		if s.peek() == ';' || s.peek() == ',' {
			s.pos++
			continue
		}
		// Unexpected character where a separator or ')' was expected;
		// stop defensively rather than loop.
		return comments
	}
}

// scanCommentSegment reads up to the next top-level ';', ',' or ')'.
func (s *scanner) scanCommentSegment() string {
	var b strings.Builder
	depth := 0
	for !s.eof() {
		c := s.peek()
		switch {
		case c == '"':
			b.WriteByte('"')
			b.WriteString(s.scanQuoted())
			b.WriteByte('"')
			continue
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return b.String()
			}
			depth--
		case (c == ';' || c == ',') && depth == 0:
			return b.String()
		}
		b.WriteByte(c)
		s.pos++
	}
	return b.String()
}

// parseCommentSegment classifies one trimmed comment segment into a bare
// value, a key=value pair, a key:value pair, or (when the value itself
// contains a parenthesized product list) a nested product sequence.
func parseCommentSegment(seg string) Comment {
	if idx := strings.IndexByte(seg, '='); idx >= 0 {
		return Comment{Key: strings.TrimSpace(seg[:idx]), Value: strings.TrimSpace(seg[idx+1:])}
	}
	if idx := strings.IndexByte(seg, ':'); idx >= 0 && looksLikeKey(seg[:idx]) {
		return Comment{Key: strings.TrimSpace(seg[:idx]), Value: strings.TrimSpace(seg[idx+1:])}
	}
	if strings.ContainsRune(seg, '(') {
		sub := &scanner{src: seg}
		if products := sub.scanProducts(false); len(products) > 0 {
			return Comment{Value: seg, Products: products}
		}
	}
	return Comment{Value: seg}
}

// looksLikeKey guards the key:value split against values that merely
// contain a colon (e.g. a URL-shaped comment), by requiring the candidate
// key to be short and identifier-like.
func looksLikeKey(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 16 {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r == '-' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// containsFold reports whether sub appears in s, case-sensitively. Kept as
// a named helper (rather than inlined strings.Contains) so HasWord's
// matching semantics can be tightened in one place later without touching
// callers.
func containsFold(s, sub string) bool {
	return strings.Contains(s, sub)
}
