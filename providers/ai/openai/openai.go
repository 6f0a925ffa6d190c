package openai

import (
	"context"
	"net/http"
	"strings"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/providers/ai"
	"github.com/promptlab/llmbridge/providers/observability"
)

const (
	chatCompletionsPath = "/chat/completions"
	embeddingsPath      = "/embeddings"

	// maxTokens is the fixed response-size ceiling sent with every chat call.
	maxTokens = 1024
)

// Adapter implements [ai.Adapter] for OpenAI-compatible APIs.
type Adapter struct {
	client ai.Client
	http   *http.Client
}

// New returns an adapter bound to the given client configuration.
func New(client ai.Client) *Adapter {
	return &Adapter{client: client, http: &http.Client{}}
}

// WithHTTPClient replaces the HTTP client used for outbound requests. Useful
// for injecting custom transports or test doubles.
func (a *Adapter) WithHTTPClient(httpClient *http.Client) *Adapter {
	a.http = httpClient
	return a
}

func (a *Adapter) endpoint(path string) string {
	return strings.TrimRight(a.client.Endpoint(), "/") + path
}

// Chat implements [ai.Adapter]. One POST to /chat/completions; only the first
// choice of the response is consumed.
func (a *Adapter) Chat(ctx context.Context, messages []ai.Message) (ai.Message, error) {
	if observer := observability.ObserverFromContext(ctx); observer != nil {
		observer.Trace(ctx, "OpenAI adapter preparing chat request",
			observability.String(observability.AttrLLMProvider, string(ai.ProviderOpenAI)),
			observability.String(observability.AttrLLMEndpoint, a.client.Endpoint()),
			observability.String(observability.AttrLLMModel, a.client.DefaultModel()),
			observability.Int(observability.AttrRequestMessagesCount, len(messages)),
		)
	}

	payload := chatRequest{
		Model:     a.client.DefaultModel(),
		Messages:  messagesToWire(messages),
		MaxTokens: maxTokens,
	}

	_, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, a.http, a.endpoint(chatCompletionsPath), a.client.APIKey(), payload)
	if err != nil {
		return ai.Message{}, ai.ClassifyError(ai.ProviderOpenAI, err)
	}

	return responseToMessage(*resp)
}

// Embed implements [ai.Adapter]. All inputs are sent in one batch; the output
// vectors preserve input order. Empty input returns an empty result without a
// network call.
func (a *Adapter) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	payload := embeddingRequest{
		Model: a.client.DefaultModel(),
		Input: texts,
	}

	_, resp, err := utils.DoPostSync[embeddingResponse](ctx, a.http, a.endpoint(embeddingsPath), a.client.APIKey(), payload)
	if err != nil {
		return nil, ai.ClassifyError(ai.ProviderOpenAI, err)
	}

	vectors := make([][]float32, 0, len(resp.Data))
	for _, item := range resp.Data {
		vectors = append(vectors, item.Embedding)
	}
	return vectors, nil
}
