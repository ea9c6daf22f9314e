package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jordienr/docsite/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")
	l.Info("server started", "port", 8080)

	out := buf.String()
	assert.Contains(t, out, `"msg":"server started"`)
	assert.Contains(t, out, `"port":8080`)
}

func TestNewLoggerWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatPretty, "INFO")
	l.Info("server started", "port", 8080)

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "server started")
	assert.Contains(t, out, "port=")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "WARN")

	l.Info("dropped")
	l.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	ctx := WithRequestID(context.Background(), "req-42")
	l.WithContext(ctx).Info("handled")

	assert.Contains(t, buf.String(), "req-42")
	assert.Equal(t, "req-42", RequestID(ctx))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"DEBUG":   "kept",
		"warning": "dropped",
	}
	for level, want := range cases {
		var buf bytes.Buffer
		l := NewLoggerWithWriter(&buf, config.LogFormatJSON, level)
		l.Debug("debug line")
		got := "dropped"
		if strings.Contains(buf.String(), "debug line") {
			got = "kept"
		}
		assert.Equal(t, want, got, "level %s", level)
	}
}
