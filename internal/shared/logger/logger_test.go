package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		from       slog.Level
		level      slog.Level
		wantSource bool
	}{
		{name: "info below threshold", from: slog.LevelWarn, level: slog.LevelInfo, wantSource: false},
		{name: "warn at threshold", from: slog.LevelWarn, level: slog.LevelWarn, wantSource: true},
		{name: "error above threshold", from: slog.LevelWarn, level: slog.LevelError, wantSource: true},
		{name: "debug mode info", from: slog.LevelDebug, level: slog.LevelInfo, wantSource: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			l := slog.New(NewSourceHandler(base, tt.from))

			l.Log(context.Background(), tt.level, "hello")

			out := buf.String()
			assert.Contains(t, out, "hello")
			if tt.wantSource {
				assert.Contains(t, out, "source=")
				assert.Contains(t, out, "logger_test.go")
			} else {
				assert.NotContains(t, out, "source=")
			}
		})
	}
}

func TestSourceHandler_WithAttrsKeepsThreshold(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := slog.New(NewSourceHandler(base, slog.LevelError)).With("component", "merchant")

	l.Warn("skipped")
	assert.NotContains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "component=merchant")

	buf.Reset()
	l.Error("failed")
	assert.Contains(t, buf.String(), "source=")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
