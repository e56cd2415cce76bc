package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped logger handed to packages.
type Logger = zerolog.Logger

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// InitLogging sends logs to stderr and, when path is set, also to that file.
func InitLogging(path, level string) error {
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = zerolog.MultiLevelWriter(w, f)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	SetOutput(w)
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// SetOutput replaces the destination of every logger created afterwards.
func SetOutput(w io.Writer) {
	mu.Lock()
	base = zerolog.New(w).With().Timestamp().Logger()
	mu.Unlock()
}

func root() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

type ctxKey struct{}

// WithRequestID stores a request id that the *Log helpers attach.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func fromContext(ctx context.Context) zerolog.Logger {
	l := root()
	if ctx == nil {
		return l
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return l.With().Str("request_id", id).Logger()
	}
	return l
}

func InfoLog(ctx context.Context, format string, args ...interface{}) {
	l := fromContext(ctx)
	l.Info().Msgf(format, args...)
}

func WarnLog(ctx context.Context, format string, args ...interface{}) {
	l := fromContext(ctx)
	l.Warn().Msgf(format, args...)
}

func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	l := fromContext(ctx)
	l.Error().Msgf(format, args...)
}

// WithField returns a logger carrying one extra field.
func WithField(key, value string) Logger {
	return root().With().Str(key, value).Logger()
}
