// Package logger wraps log/slog with the fields and helpers the service logs
// under: request ids, HTTP access lines, predictor fallbacks and store errors.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

// RequestIDKey is the request context key httpkit.RequestID stores the id under.
const RequestIDKey contextKey = "request_id"

type Logger struct {
	*slog.Logger
}

// Options controls level and output. Zero values mean stdout only, at debug
// in development and info elsewhere.
type Options struct {
	// Level is a slog level name ("debug", "info", "warn", "error").
	Level string
	// File adds a size-rotated log file next to stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func New(env string) *Logger {
	return NewWithOptions(env, Options{})
}

// NewWithOptions writes text records in development and JSON otherwise.
func NewWithOptions(env string, opts Options) *Logger {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 100),
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			Compress:   true,
		})
	}

	dev := strings.EqualFold(env, "development")
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level, dev)}

	var handler slog.Handler
	if dev {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}
	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(name string, dev bool) slog.Level {
	var lvl slog.Level
	if name != "" && lvl.UnmarshalText([]byte(name)) == nil {
		return lvl
	}
	if dev {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Discard drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// ContextWithRequestID stores id for WithContext.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// WithContext tags records with the request id carried by ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return l.WithRequestID(id)
	}
	return l
}

func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With(slog.String("request_id", requestID))}
}

func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// HTTPError logs a request that recorded an error: 5xx at error level,
// anything else at warn.
func (l *Logger) HTTPError(method, path string, status int, err error, clientIP string) {
	level := slog.LevelWarn
	if status >= 500 {
		level = slog.LevelError
	}
	l.LogAttrs(context.Background(), level, "http_error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("client_ip", clientIP),
	)
}

// PredictionFallback logs a remote predictor failure that was answered locally.
func (l *Logger) PredictionFallback(location string, err error) {
	l.Warn("prediction_fallback",
		slog.String("location", location),
		slog.String("error", err.Error()),
	)
}

// StoreError logs a history store or archive failure.
func (l *Logger) StoreError(operation string, err error) {
	l.Error("store_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
