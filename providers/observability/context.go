package observability

import "context"

type observerContextKey struct{}

// WithObserver returns a context carrying obs. Adapters and dispatch wrappers
// pick it up via [ObserverFromContext] so callers opt in to observability per
// call chain without plumbing a logger parameter everywhere.
func WithObserver(ctx context.Context, obs Observer) context.Context {
	return context.WithValue(ctx, observerContextKey{}, obs)
}

// ObserverFromContext returns the observer stored in ctx, or nil when none
// was attached.
func ObserverFromContext(ctx context.Context) Observer {
	obs, _ := ctx.Value(observerContextKey{}).(Observer)
	return obs
}

// FromContextOrDefault returns the observer stored in ctx, falling back to
// the package default slog-backed observer. Use this where an event must not
// be lost even when the caller attached no observer (e.g. the embedding
// wrapper's logged-not-surfaced failures).
func FromContextOrDefault(ctx context.Context) Observer {
	if obs := ObserverFromContext(ctx); obs != nil {
		return obs
	}
	return Default()
}
