// Package observability provides the structured logging abstraction used by
// the provider adapters and the dispatch wrappers. It decouples the rest of
// the codebase from a concrete logging backend: callers emit events through
// the [Observer] interface with typed [Attribute] values, and the default
// implementation routes everything to log/slog.
package observability

import (
	"context"
	"time"
)

// Observer receives structured events from provider calls. Implementations
// must be safe for concurrent use.
type Observer interface {
	Trace(ctx context.Context, msg string, attrs ...Attribute)
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)

	// StartSpan opens a [Span] covering one unit of work and attaches it to
	// the returned context.
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to an event.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute. A nil error yields an empty value.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: ""}
	}
	return Attribute{Key: "error", Value: err.Error()}
}
