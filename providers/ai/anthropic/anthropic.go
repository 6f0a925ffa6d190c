package anthropic

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/providers/ai"
	"github.com/promptlab/llmbridge/providers/observability"
)

const (
	messagesPath = "/messages"

	// anthropicVersion is the required anthropic-version header value.
	// Anthropic uses it to version-lock response formats independently of
	// the URL.
	anthropicVersion = "2023-06-01"

	// maxTokens is the fixed response-size ceiling sent with every chat call.
	maxTokens = 1024
)

// Adapter implements [ai.Adapter] for Anthropic's Messages API.
type Adapter struct {
	client ai.Client
	http   *http.Client
}

// New returns an adapter bound to the given client configuration.
func New(client ai.Client) *Adapter {
	return &Adapter{client: client, http: &http.Client{}}
}

// WithHTTPClient replaces the HTTP client used for outbound requests.
func (a *Adapter) WithHTTPClient(httpClient *http.Client) *Adapter {
	a.http = httpClient
	return a
}

// buildHeaders constructs the headers required on every request. x-api-key
// carries the credential (Anthropic does not use Bearer tokens) and
// anthropic-version pins the wire format.
func (a *Adapter) buildHeaders() []utils.HeaderOption {
	return []utils.HeaderOption{
		{Key: "x-api-key", Value: a.client.APIKey()},
		{Key: "anthropic-version", Value: anthropicVersion},
		{Key: "accept", Value: "application/json"},
	}
}

// Chat implements [ai.Adapter]. System turns ride in the top-level system
// field; everything else is one POST to /messages.
func (a *Adapter) Chat(ctx context.Context, messages []ai.Message) (ai.Message, error) {
	if observer := observability.ObserverFromContext(ctx); observer != nil {
		observer.Trace(ctx, "Anthropic adapter preparing chat request",
			observability.String(observability.AttrLLMProvider, string(ai.ProviderAnthropic)),
			observability.String(observability.AttrLLMEndpoint, a.client.Endpoint()),
			observability.String(observability.AttrLLMModel, a.client.DefaultModel()),
			observability.Int(observability.AttrRequestMessagesCount, len(messages)),
		)
	}

	wire, system := messagesToWire(messages)
	payload := messagesRequest{
		Model:     a.client.DefaultModel(),
		Messages:  wire,
		MaxTokens: maxTokens,
		System:    system,
	}

	url := strings.TrimRight(a.client.Endpoint(), "/") + messagesPath

	// Empty apiKey argument: Anthropic authenticates via x-api-key, so
	// DoPostSync must not inject a Bearer token.
	_, resp, err := utils.DoPostSync[messagesResponse](ctx, a.http, url, "", payload, a.buildHeaders()...)
	if err != nil {
		return ai.Message{}, ai.ClassifyError(ai.ProviderAnthropic, err)
	}

	return responseToMessage(*resp), nil
}

// Embed implements [ai.Adapter]. Anthropic exposes no embedding endpoint;
// this always returns a semantic error, which the dispatch layer degrades to
// an empty result per the documented policy.
func (a *Adapter) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, &ai.Error{
		Kind:     ai.ErrSemantic,
		Provider: ai.ProviderAnthropic,
		Err:      errors.New("embeddings are not supported"),
	}
}
