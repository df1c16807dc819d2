package logger

import "log/slog"

// WithBuildStats attaches the analyzer's build-time diagnostics —
// compiled matcher count, post-processor calculator count, and the parse
// cache backend chosen — as static attributes on every record the
// resulting logger emits. The root Builder uses this when a logger was
// supplied via WithLogger, so build diagnostics show up without the
// analyzer having to know anything about slog's attribute API itself.
func WithBuildStats(matcherCount, calculatorCount int, cacheBackend string) Option {
	return WithAttr(
		slog.Int("matcher_count", matcherCount),
		slog.Int("calculator_count", calculatorCount),
		slog.String("cache_backend", cacheBackend),
	)
}
