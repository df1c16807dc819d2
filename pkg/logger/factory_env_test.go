package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithLevel(slog.LevelDebug),
		logger.WithOutput(buf),
	)
	require.NotNil(t, log)
	log.Debug("msg")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestWithLevelFiltersBelowThreshold(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithLevel(slog.LevelWarn),
		logger.WithOutput(buf),
	)
	log.Info("should be filtered")
	assert.Empty(t, buf.String())
}

func TestWithHandlerOptionsOverridesLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithLevel(slog.LevelDebug),
		logger.WithHandlerOptions(&slog.HandlerOptions{Level: slog.LevelError}),
		logger.WithOutput(buf),
	)
	log.Warn("should be filtered, HandlerOptions wins over WithLevel")
	assert.Empty(t, buf.String())
}

func TestWithComponentAndBuildStats(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(buf),
		logger.WithComponent("builder"),
		logger.WithBuildStats(42, 7, "memory"),
	)
	log.Info("build complete")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "builder", entry["component"])
	assert.Equal(t, float64(42), entry["matcher_count"])
	assert.Equal(t, float64(7), entry["calculator_count"])
	assert.Equal(t, "memory", entry["cache_backend"])
}

func TestWithExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	type key string
	k := key("id")
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(k); v != nil {
			return slog.String("id", v.(string)), true
		}
		return slog.Attr{}, false
	}
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(buf),
		logger.WithContextExtractors(extractor),
	)
	ctx := context.WithValue(context.Background(), k, "123")
	log.InfoContext(ctx, "msg")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "123", entry["id"])
}
