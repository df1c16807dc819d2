package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/parsecache"
)

// wireResult is the JSON shape a *field.Result is marshalled to/from on
// the wire; field.Result itself keeps its fields private, so this is the
// only place that knows about the serialization format.
type wireResult struct {
	Raw    string            `json:"raw"`
	Values map[string]string `json:"values"`
}

// Store is a parsecache.Store backed by Redis, for pipeline deployments
// that want to share a parse cache across worker processes rather than
// keep one in-process LRU per worker. Unlike parsecache.NewLRU it has no
// fixed capacity of its own: it is bounded by cfg.ParseCacheTTL and
// whatever eviction policy the Redis deployment itself enforces.
type Store struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStore wraps an existing Redis client as a parsecache.Store. It holds
// no context: GetOrCompute, Clear and Len each issue their Redis calls
// with context.Background().
func NewStore(client redis.UniversalClient, cfg Config) *Store {
	return &Store{client: client, prefix: cfg.KeyPrefix, ttl: cfg.ParseCacheTTL}
}

var _ parsecache.Store = (*Store)(nil)

func (s *Store) GetOrCompute(key string, loader func() *field.Result) *field.Result {
	ctx := context.Background()
	fullKey := s.prefix + key

	if raw, err := s.client.Get(ctx, fullKey).Bytes(); err == nil {
		if result, ok := decode(raw); ok {
			return result
		}
	}

	result := loader()
	if payload, err := encode(result); err == nil {
		_ = s.client.Set(ctx, fullKey, payload, s.ttl).Err()
	}
	return result
}

// Clear removes every key under this store's prefix using SCAN, to avoid
// blocking Redis the way FLUSHDB would on a database shared with other
// consumers.
func (s *Store) Clear() {
	ctx := context.Background()
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 1000).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			_ = s.client.Del(ctx, keys...).Err()
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
}

// Len counts keys under this store's prefix via SCAN. Approximate under
// concurrent writers, same caveat as Redis's own DBSIZE.
func (s *Store) Len() int {
	ctx := context.Background()
	var cursor uint64
	count := 0
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 1000).Result()
		if err != nil {
			return count
		}
		count += len(keys)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return count
}

func encode(r *field.Result) ([]byte, error) {
	return json.Marshal(wireResult{Raw: r.Raw(), Values: r.ToMap()})
}

func decode(raw []byte) (*field.Result, bool) {
	var w wireResult
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, false
	}
	return field.FromValues(w.Raw, w.Values), true
}
