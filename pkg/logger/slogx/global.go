package slogx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

var dl atomic.Pointer[Logger]

func init() {
	SetDefault(New(slog.NewJSONHandler(os.Stderr, nil)))
}

// Settings selects the handler installed by InitGlobal.
type Settings struct {
	Level  string
	Pretty bool
	// Service is attached to every record when set.
	Service string
}

// InitGlobal replaces the default logger. Pretty output goes through tint, everything
// else is JSON. Wrappers are applied in order, the last one ends up outermost.
func InitGlobal(w io.Writer, s Settings, wrappers ...func(slog.Handler) slog.Handler) error {
	level, err := ParseLevel(s.Level)
	if err != nil {
		return fmt.Errorf("init global logger: %v", err)
	}

	var handler slog.Handler
	if s.Pretty {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}

	if s.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", s.Service)})
	}

	for _, wrap := range wrappers {
		handler = wrap(handler)
	}

	SetDefault(New(handler))

	return nil
}

func SetDefault(l *Logger) {
	dl.Store(l)
}

func Default() *Logger {
	return dl.Load()
}

func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Info(ctx, msg, attrs...)
}

func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Debug(ctx, msg, attrs...)
}

func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Warn(ctx, msg, attrs...)
}

func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Error(ctx, msg, attrs...)
}

func Log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	Default().Log(ctx, level, msg, attrs...)
}
