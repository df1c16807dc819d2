package yauaa

import (
	"errors"
	"fmt"
)

// ConfigError reports a build-time failure: a malformed built-in rule set
// or a post-processor pipeline whose calculators form a cycle or read a
// field before its writer runs. It is always returned from Build, never
// from a parse — construction is the only place this module can fail.
type ConfigError struct {
	cause error
}

func newConfigError(cause error) *ConfigError {
	return &ConfigError{cause: cause}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("yauaa: invalid configuration: %v", e.cause)
}

func (e *ConfigError) Unwrap() error { return e.cause }

// UsageError reports a programmer error at the point of use rather than a
// malformed configuration: a negative cache size, or any other builder
// option outside its documented domain. Unlike parse-time input (which is
// always total, see Analyzer.Parse), builder misuse is fatal at
// construction.
type UsageError struct {
	cause error
}

func newUsageError(cause error) *UsageError {
	return &UsageError{cause: cause}
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("yauaa: usage error: %v", e.cause)
}

func (e *UsageError) Unwrap() error { return e.cause }

// Sentinel causes wrapped by UsageError. ConfigError's cause is whatever
// pkg/rule or pkg/postprocess returned, so it has no sentinels of its own.
var (
	// ErrNegativeCacheSize is the cause of a UsageError when CacheSize is
	// given a negative value; 0 is valid (it disables caching).
	ErrNegativeCacheSize = errors.New("cache size must not be negative")

	// ErrNegativePreheat is the cause of a UsageError when Preheat is
	// given a negative sample count.
	ErrNegativePreheat = errors.New("preheat sample count must not be negative")
)
