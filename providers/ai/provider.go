package ai

import "context"

// Adapter is the capability set every provider implementation exposes: chat
// completion and text embedding. One concrete implementation exists per
// provider, selected by a single switch at configuration time.
//
// Both methods return *Error values so callers can distinguish transport,
// protocol, decode, and semantic failures. Providers that do not implement a
// capability (Anthropic has no embedding endpoint) return a semantic error;
// the uniform function wrappers in core/dispatch translate that into the
// degraded empty-result contract.
type Adapter interface {
	// Chat converts messages to the provider wire format, performs one
	// network call, and normalizes the response back into a Message.
	// Content order round-trips; the returned message's content is never
	// empty (an empty provider result becomes one empty text part).
	Chat(ctx context.Context, messages []Message) (Message, error)

	// Embed returns one vector per input text, in input order. An empty
	// input short-circuits to an empty result without a network call.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatFunc is the uniform chat contract handed to callers: it always returns
// a message, never an error. Adapter failures are synthesized into a
// System-role message whose text embeds the error description.
type ChatFunc func(ctx context.Context, messages []Message) Message

// EmbedFunc is the uniform embedding contract: on failure it returns an empty
// vector list and the error is logged, not surfaced. This is a deliberately
// weaker contract than chat's; use [Adapter.Embed] directly when a typed
// outcome is needed.
type EmbedFunc func(ctx context.Context, texts []string) [][]float32
