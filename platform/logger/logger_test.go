package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func bufferLogger(buf *bytes.Buffer) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var rec map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	return rec
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		dev  bool
		want slog.Level
	}{
		{name: "", dev: true, want: slog.LevelDebug},
		{name: "", dev: false, want: slog.LevelInfo},
		{name: "warn", dev: true, want: slog.LevelWarn},
		{name: "ERROR", dev: false, want: slog.LevelError},
		{name: "loud", dev: false, want: slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.name, tt.dev); got != tt.want {
			t.Fatalf("parseLevel(%q, %v) = %v, want %v", tt.name, tt.dev, got, tt.want)
		}
	}
}

func TestWithContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf)

	ctx := ContextWithRequestID(context.Background(), "req-42")
	log.WithContext(ctx).Info("valuation served")

	if got := lastRecord(t, &buf)["request_id"]; got != "req-42" {
		t.Fatalf("expected request_id req-42, got %v", got)
	}

	buf.Reset()
	log.WithContext(context.Background()).Info("no id")
	if _, ok := lastRecord(t, &buf)["request_id"]; ok {
		t.Fatal("expected no request_id without one in context")
	}
}

func TestHTTPError_Level(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf)

	log.HTTPError("GET", "/api/v1/estimates/x", 404, errors.New("estimate not found"), "10.0.0.1")
	if got := lastRecord(t, &buf)["level"]; got != "WARN" {
		t.Fatalf("expected WARN for 404, got %v", got)
	}

	log.HTTPError("GET", "/api/v1/estimates/x", 500, errors.New("connection reset"), "10.0.0.1")
	if got := lastRecord(t, &buf)["level"]; got != "ERROR" {
		t.Fatalf("expected ERROR for 500, got %v", got)
	}
}
