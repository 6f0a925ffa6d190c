// Package dispatch selects the provider adapter matching a client
// configuration and wraps it behind the two uniform capability functions the
// rest of the system consumes: chat and embedding. It contains no business
// logic — selection is a single switch over the provider field.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/promptlab/llmbridge/providers/ai"
	"github.com/promptlab/llmbridge/providers/ai/anthropic"
	"github.com/promptlab/llmbridge/providers/ai/gemini"
	"github.com/promptlab/llmbridge/providers/ai/openai"
	"github.com/promptlab/llmbridge/providers/observability"
)

// For returns the adapter implementing client's provider. Unknown providers
// yield an adapter whose every call fails with a semantic error, which the
// uniform wrappers degrade to the documented empty results.
func For(client ai.Client) ai.Adapter {
	switch client.Provider() {
	case ai.ProviderOpenAI:
		return openai.New(client)
	case ai.ProviderAnthropic:
		return anthropic.New(client)
	case ai.ProviderGemini:
		return gemini.New(client)
	default:
		return unsupportedAdapter{provider: client.Provider()}
	}
}

// Chat returns the uniform chat function for client. The returned function
// never fails: any adapter error — transport, protocol, decode, or semantic —
// is synthesized into a single System-role message whose text embeds the
// error description, so callers always receive a normal message.
func Chat(client ai.Client) ai.ChatFunc {
	adapter := For(client)
	return func(ctx context.Context, messages []ai.Message) ai.Message {
		observer := observability.FromContextOrDefault(ctx)
		ctx, span := observer.StartSpan(ctx, "dispatch.chat",
			observability.String(observability.AttrLLMProvider, string(client.Provider())),
			observability.Int(observability.AttrRequestMessagesCount, len(messages)),
		)
		defer span.End()

		reply, err := adapter.Chat(ctx, messages)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, string(errorKind(err)))
			observer.Error(ctx, "chat request failed",
				observability.String(observability.AttrLLMProvider, string(client.Provider())),
				observability.String(observability.AttrErrorKind, string(errorKind(err))),
				observability.Error(err),
			)
			return ai.NewMessage("", "system", []ai.Part{ai.Text(err.Error())})
		}
		span.SetAttributes(
			observability.String(observability.AttrResponseID, reply.ID),
			observability.Int(observability.AttrResponsePartsCount, len(reply.Content)),
		)
		span.SetStatus(observability.StatusOK, "")
		return reply
	}
}

// Embedding returns the uniform embedding function for client. On failure the
// returned function resolves to an empty vector list; the error is logged,
// not surfaced. Providers without an embedding endpoint (Anthropic) therefore
// always produce an empty result — an explicit policy, not an oversight.
func Embedding(client ai.Client) ai.EmbedFunc {
	adapter := For(client)
	return func(ctx context.Context, texts []string) [][]float32 {
		observer := observability.FromContextOrDefault(ctx)
		ctx, span := observer.StartSpan(ctx, "dispatch.embedding",
			observability.String(observability.AttrLLMProvider, string(client.Provider())),
			observability.Int(observability.AttrRequestInputsCount, len(texts)),
		)
		defer span.End()

		vectors, err := adapter.Embed(ctx, texts)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, string(errorKind(err)))
			observer.Error(ctx, "embedding request failed",
				observability.String(observability.AttrLLMProvider, string(client.Provider())),
				observability.String(observability.AttrErrorKind, string(errorKind(err))),
				observability.Int(observability.AttrRequestInputsCount, len(texts)),
				observability.Error(err),
			)
			return nil
		}
		span.SetAttributes(observability.Int(observability.AttrResponseVectorsCount, len(vectors)))
		span.SetStatus(observability.StatusOK, "")
		return vectors
	}
}

func errorKind(err error) ai.ErrorKind {
	var adapterErr *ai.Error
	if errors.As(err, &adapterErr) {
		return adapterErr.Kind
	}
	return ai.ErrTransport
}

// unsupportedAdapter is returned for provider values outside the fixed three.
type unsupportedAdapter struct {
	provider ai.ProviderName
}

func (u unsupportedAdapter) Chat(ctx context.Context, messages []ai.Message) (ai.Message, error) {
	return ai.Message{}, u.err()
}

func (u unsupportedAdapter) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, u.err()
}

func (u unsupportedAdapter) err() error {
	return &ai.Error{
		Kind:     ai.ErrSemantic,
		Provider: u.provider,
		Err:      fmt.Errorf("unsupported provider"),
	}
}
