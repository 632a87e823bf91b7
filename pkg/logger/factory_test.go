package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates JSON logger", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello", logger.CookieName("sid"))
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "cookie=sid")
	})

	t.Run("last formatter wins", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("default level drops debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("level by name", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
		log.Debug("shown")
		assert.Equal(t, "DEBUG", decode(t, buf)["level"])
	})

	t.Run("includes static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(logger.Component("cookie")),
		)
		log.Info("msg")
		assert.Equal(t, "cookie", decode(t, buf)["component"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("request_id", ctxKey),
			logger.WithContextExtractors(nil),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "42", decode(t, buf)["request_id"])
	})

	t.Run("extractor skipped when value missing", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		type key string
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("request_id", key("id")),
		)
		log.InfoContext(context.Background(), "msg")
		_, ok := decode(t, buf)["request_id"]
		assert.False(t, ok)
	})

	t.Run("decorator keeps extractors across groups", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(context.Context) (slog.Attr, bool) {
				return slog.String("trace", "t1"), true
			}),
		)
		log.With(slog.String("a", "b")).WithGroup("g").InfoContext(context.Background(), "msg", slog.Int("n", 1))
		entry := decode(t, buf)
		assert.Equal(t, "b", entry["a"])
		group, ok := entry["g"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "t1", group["trace"])
	})
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
	assert.NotPanics(t, func() {
		logger.New(logger.WithFormat(logger.FormatText))
	})
}

func TestWithLevelNamePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		logger.New(logger.WithLevelName("loud"))
	})
}
