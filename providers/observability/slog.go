package observability

import (
	"context"
	"log/slog"
	"sync"
)

// LevelTrace sits below slog.LevelDebug, matching the extra verbosity level
// used for per-request wire events.
const LevelTrace = slog.Level(-8)

// SlogObserver implements [Observer] on top of a log/slog logger.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver wraps logger as an Observer. A nil logger falls back to
// slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) log(ctx context.Context, level slog.Level, msg string, attrs []Attribute) {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, slog.Any(attr.Key, attr.Value))
	}
	o.logger.Log(ctx, level, msg, args...)
}

func (o *SlogObserver) Trace(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, LevelTrace, msg, attrs)
}

func (o *SlogObserver) Debug(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs)
}

func (o *SlogObserver) Info(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs)
}

func (o *SlogObserver) Warn(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs)
}

func (o *SlogObserver) Error(ctx context.Context, msg string, attrs ...Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs)
}

var (
	defaultObserver     Observer
	defaultObserverOnce sync.Once
)

// Default returns the process-wide fallback observer, a [SlogObserver] over
// slog.Default().
func Default() Observer {
	defaultObserverOnce.Do(func() {
		defaultObserver = NewSlogObserver(nil)
	})
	return defaultObserver
}
