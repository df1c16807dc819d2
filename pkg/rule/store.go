package rule

import (
	"sort"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// Store is the immutable, compiled matcher catalog. It is built once by
// Builder.Compile and never mutated afterward: concurrent Candidates
// calls need no locking.
type Store struct {
	matchers []*Matcher
	index    map[string][]*Matcher // required word -> matchers needing it
	words    []string              // indexed words, sorted by postings-list length ascending
}

// Matchers returns the full catalog in load order.
func (s *Store) Matchers() []*Matcher { return s.matchers }

// Len reports the number of compiled matchers.
func (s *Store) Len() int { return len(s.matchers) }

// Candidates returns every matcher whose required words are all present
// in t, plus every matcher with no required words (catch-alls), in load
// order. The result is a superset: Matches must still be called to
// confirm a candidate actually fires, per pkg/rule's contract that false
// positives here are tolerated.
//
// The indexed words are kept sorted smallest-postings-list-first; every
// indexed word is still checked against t, so this order does not change
// the result.
func (s *Store) Candidates(t *token.Tree) []*Matcher {
	hits := make(map[*Matcher]int, len(s.matchers))
	for _, w := range s.words {
		if !t.HasWord(w) {
			continue
		}
		for _, m := range s.index[w] {
			hits[m]++
		}
	}

	out := make([]*Matcher, 0, len(s.matchers))
	for _, m := range s.matchers {
		if len(m.requiredWords) == 0 {
			out = append(out, m)
			continue
		}
		if hits[m] == len(m.requiredWords) {
			out = append(out, m)
		}
	}
	return out
}

// buildIndex populates the inverted index from the compiled matcher list.
// Called once by Builder.Compile.
func (s *Store) buildIndex() {
	s.index = make(map[string][]*Matcher)
	for _, m := range s.matchers {
		for _, w := range m.requiredWords {
			s.index[w] = append(s.index[w], m)
		}
	}
	s.words = make([]string, 0, len(s.index))
	for w := range s.index {
		s.words = append(s.words, w)
	}
	sort.Slice(s.words, func(i, j int) bool {
		li, lj := len(s.index[s.words[i]]), len(s.index[s.words[j]])
		if li != lj {
			return li < lj
		}
		return s.words[i] < s.words[j]
	})
}
