package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Span represents a single traced unit of work, typically one provider call.
type Span interface {
	// End completes the span, emitting its duration.
	End()
	// SetAttributes adds attributes carried on the span's end event.
	SetAttributes(attrs ...Attribute)
	// SetStatus records the span outcome.
	SetStatus(code StatusCode, description string)
	// RecordError records an error against the span.
	RecordError(err error)
	// AddEvent records a point-in-time event within the span, e.g. the wire
	// request leaving or the response arriving.
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode represents the outcome of a span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unset"
	}
}

type spanContextKey struct{}

// ContextWithSpan returns a new context carrying span.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	return context.WithValue(ctx, spanContextKey{}, span)
}

// SpanFromContext returns the span stored in ctx, or nil when none was
// attached.
func SpanFromContext(ctx context.Context) Span {
	span, _ := ctx.Value(spanContextKey{}).(Span)
	return span
}

// StartSpan opens a slog-backed span, logging a start event at debug level
// and attaching the span to the returned context.
func (o *SlogObserver) StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	span := &slogSpan{
		name:      name,
		startTime: time.Now(),
		logger:    o.logger,
		attrs:     attrs,
	}

	logAttrs := []slog.Attr{
		slog.String("span", name),
		slog.String("event", "span.start"),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	o.logger.LogAttrs(ctx, slog.LevelDebug, "Span started", logAttrs...)

	return ContextWithSpan(ctx, span), span
}

type slogSpan struct {
	name      string
	startTime time.Time
	logger    *slog.Logger
	attrs     []Attribute
	mu        sync.Mutex
}

func (s *slogSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	logAttrs := []slog.Attr{
		slog.String("span", s.name),
		slog.String("event", "span.end"),
		slog.Duration("duration", time.Since(s.startTime)),
	}
	for _, attr := range s.attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	s.logger.LogAttrs(context.Background(), slog.LevelInfo, "Span ended", logAttrs...)
}

func (s *slogSpan) SetAttributes(attrs ...Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

func (s *slogSpan) SetStatus(code StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attrs = append(s.attrs, String(AttrStatus, code.String()))
	if description != "" {
		s.attrs = append(s.attrs, String(AttrStatusDescription, description))
	}
}

func (s *slogSpan) AddEvent(name string, attrs ...Attribute) {
	logAttrs := []slog.Attr{
		slog.String("span", s.name),
		slog.String("event", name),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span event", logAttrs...)
}

func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attrs = append(s.attrs, Error(err))
	s.logger.LogAttrs(context.Background(), slog.LevelError, "Span error",
		slog.String("span", s.name),
		slog.String("event", "error"),
		slog.String("error", err.Error()),
	)
}
