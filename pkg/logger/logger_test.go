package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/luwang-go/pkg/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Named("calc").With("shape", "square").Debug("Area calculated", "area_sqm", 10000)
	require.NoError(t, log.Sync())

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "Area calculated", entries[0]["msg"])
	assert.Equal(t, "calc", entries[0]["logger"])
	assert.Equal(t, "square", entries[0]["shape"])
	assert.Equal(t, float64(10000), entries[0]["area_sqm"])
	assert.Contains(t, entries[0], "timestamp")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := logger.MustNew(logger.Config{Level: "warn", Output: &buf})

	log.Info("hidden")
	log.Warn("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud"})
	assert.Error(t, err)
}

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.MustNew(logger.Config{Output: &buf})

	ctx := context.WithValue(context.Background(), logger.RequestIDKey, "req-42")
	log.WithContext(ctx).Info("handled")
	log.WithContext(context.Background()).Info("no id")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-42", entries[0]["request_id"])
	assert.NotContains(t, entries[1], "request_id")
}

func TestWith_DoesNotLeakBetweenChildren(t *testing.T) {
	var buf bytes.Buffer
	base := logger.MustNew(logger.Config{Output: &buf}).With("a", 1)

	base.With("b", 2).Info("first")
	base.With("c", 3).Info("second")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[1], "b")
	assert.Equal(t, float64(3), entries[1]["c"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().With("k", "v").Error("discarded")
	})
}
