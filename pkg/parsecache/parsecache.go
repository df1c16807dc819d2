// Package parsecache is the bounded, thread-safe cache sitting in front of
// the analyzer's matching pipeline, keyed by raw input and holding
// immutable parse results.
package parsecache

import (
	"golang.org/x/sync/singleflight"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/cache"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
)

// Store is the capability a cache backend must provide. GetOrCompute
// implementations are expected to be safe for concurrent callers; Clear
// must atomically empty the store without invalidating results already
// returned to callers (those are immutable field.Result values and
// outlive eviction regardless).
type Store interface {
	// GetOrCompute returns the cached Result for key, computing and
	// storing it via loader on a miss. Concurrent callers requesting the
	// same key are not guaranteed to share a single loader invocation —
	// implementations are free to compute it more than once — but the
	// default LRU-backed Store does collapse them via singleflight.
	GetOrCompute(key string, loader func() *field.Result) *field.Result

	// Clear empties the store. Results already returned to callers are
	// unaffected.
	Clear()

	// Len reports the number of entries currently held.
	Len() int
}

// Instantiator builds a Store of the given capacity. Size 0 is handled by
// the caller (the root Builder substitutes a no-op Store rather than
// calling an Instantiator with 0).
type Instantiator func(size int) Store

// lruStore is the default Store, backed by pkg/cache's generic LRU and a
// singleflight.Group that collapses concurrent misses for the same key
// into one loader call.
type lruStore struct {
	cache *cache.LRUCache[string, *field.Result]
	group singleflight.Group
}

// NewLRU is the default Instantiator: a bounded LRU of capacity size. It
// panics for size <= 0, same as the underlying cache.LRUCache — callers
// with size 0 should use NewNoop instead (the root Builder does this for
// them).
func NewLRU(size int) Store {
	return &lruStore{cache: cache.NewLRUCache[string, *field.Result](size)}
}

func (s *lruStore) GetOrCompute(key string, loader func() *field.Result) *field.Result {
	if v, ok := s.cache.Get(key); ok {
		return v
	}
	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		if v, ok := s.cache.Get(key); ok {
			return v, nil
		}
		result := loader()
		s.cache.Put(key, result)
		return result, nil
	})
	return v.(*field.Result)
}

func (s *lruStore) Clear() {
	s.cache.Clear()
}

func (s *lruStore) Len() int {
	return s.cache.Len()
}

// noopStore is used when caching is disabled (cacheSize(0)): every call
// invokes loader unconditionally.
type noopStore struct{}

// NewNoop returns a Store that never caches anything.
func NewNoop() Store { return noopStore{} }

func (noopStore) GetOrCompute(_ string, loader func() *field.Result) *field.Result {
	return loader()
}

func (noopStore) Clear() {}

func (noopStore) Len() int { return 0 }
