package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		require.NoError(t, sonic.Unmarshal(line, &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.Info("school list applied", "schools", 9, "key", "school-football-tournament-v1")
	logger.Warn("stored tournament unusable", "error", errors.New("malformed"))
	logger.Debug("hidden below level")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "school list applied", lines[0]["msg"])
	assert.EqualValues(t, 9, lines[0]["schools"])
	assert.Equal(t, "school-football-tournament-v1", lines[0]["key"])
	assert.Equal(t, "malformed", lines[1]["error"])
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.DebugContext(ctx, "score recorded", "match_id", "boys__1__a__d")
	logger.InfoContext(context.Background(), "no span")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", lines[0]["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", lines[0]["span_id"])
	assert.Equal(t, "boys__1__a__d", lines[0]["match_id"])
	assert.NotContains(t, lines[1], "trace_id")
}

func TestLogger_WithAndOddArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo).With("component", "tournament")

	logger.Info("odd", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "tournament", lines[0]["component"])
	assert.Contains(t, lines[0], "dangling")
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range testCases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	assert.NoError(t, logger.Sync())
	assert.NotNil(t, logger.With("k", "v"))
}
