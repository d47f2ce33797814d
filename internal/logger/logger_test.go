package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.GetLevel()
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})

	var buf bytes.Buffer
	Setup("debug", &buf)
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetup_WritesJSONAtLevel(t *testing.T) {
	buf := capture(t)
	Setup("warn", buf)

	New().Info("hidden")
	New().Warn("shown")

	entry := lastEntry(t, buf)
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestWithContext(t *testing.T) {
	buf := capture(t)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UsernameKey, "owner")
	WithContext(ctx).Info("with context")

	entry := lastEntry(t, buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "owner", entry["user"])
}

func TestWithContext_UnknownUser(t *testing.T) {
	buf := capture(t)

	WithContext(context.Background()).Info("anonymous")

	entry := lastEntry(t, buf)
	assert.Equal(t, "unknown", entry["user"])
	assert.NotContains(t, entry, "request_id")
}

func TestWithContext_NilContext(t *testing.T) {
	buf := capture(t)

	//nolint:staticcheck
	WithContext(nil).Info("nil ctx")

	entry := lastEntry(t, buf)
	assert.Equal(t, "nil ctx", entry["msg"])
	assert.NotContains(t, entry, "user")
}

func TestFieldHelpers(t *testing.T) {
	buf := capture(t)

	New().
		WithField("bookmark_id", "b1").
		WithFields(map[string]interface{}{"tags": 2}).
		WithError(errors.New("boom")).
		Error("failed")

	entry := lastEntry(t, buf)
	assert.Equal(t, "b1", entry["bookmark_id"])
	assert.Equal(t, float64(2), entry["tags"])
	assert.Equal(t, "boom", entry["error"])
}
