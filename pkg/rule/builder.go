package rule

import (
	"errors"
	"fmt"
)

// Builder compiles a Store from a fluent sequence of Add calls: accumulate,
// validate, and Compile once at the end rather than failing eagerly on
// every call.
type Builder struct {
	matchers []*Matcher
	names    map[string]bool
	errs     []error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{names: make(map[string]bool)}
}

// Add registers one matcher. name is a diagnostic label shown in build
// errors and matcher-stats output; it plays no role in matching itself.
// requiredWords drives candidate lookup (empty means "always a
// candidate"). predicate may be nil to always match once selected as a
// candidate. At least one extract is required.
func (b *Builder) Add(name string, requiredWords []string, predicate Predicate, extracts ...Extract) *Builder {
	if name == "" {
		b.errs = append(b.errs, ErrEmptyMatcherName)
		return b
	}
	if b.names[name] {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrDuplicateMatcherName, name))
		return b
	}
	if len(extracts) == 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrNoExtracts, name))
		return b
	}
	b.names[name] = true
	b.matchers = append(b.matchers, &Matcher{
		id:            len(b.matchers),
		name:          name,
		requiredWords: requiredWords,
		predicate:     predicate,
		extracts:      extracts,
	})
	return b
}

// Len reports how many matchers have been added so far.
func (b *Builder) Len() int { return len(b.matchers) }

// Compile freezes the accumulated matchers into an immutable Store. It
// fails if any Add call was rejected.
func (b *Builder) Compile() (*Store, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	s := &Store{matchers: b.matchers}
	s.buildIndex()
	return s, nil
}
