package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/providers/ai"
	"github.com/promptlab/llmbridge/providers/observability"
)

// Adapter implements [ai.Adapter] for the Gemini API.
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

func (a *Adapter) authHeader() utils.HeaderOption {
	return utils.HeaderOption{Key: "x-goog-api-key", Value: a.client.APIKey()}
}

// Generate sends one generateContent request and returns the decoded
// response. Most callers want [Adapter.Chat]; Generate exists for consumers
// that need raw inline image data and MIME types from the candidates.
func (a *Adapter) Generate(ctx context.Context, messages []ai.Message) (*GenerateContentResponse, error) {
	if observer := observability.ObserverFromContext(ctx); observer != nil {
		observer.Trace(ctx, "Gemini adapter preparing generate request",
			observability.String(observability.AttrLLMProvider, string(ai.ProviderGemini)),
			observability.String(observability.AttrLLMEndpoint, a.client.Endpoint()),
			observability.String(observability.AttrLLMModel, a.client.DefaultModel()),
			observability.Int(observability.AttrRequestMessagesCount, len(messages)),
		)
	}

	endpoint := strings.TrimRight(a.client.Endpoint(), "/")
	pathModel, _ := normalizeModelID(a.client.DefaultModel())
	url := fmt.Sprintf("%s/%s:generateContent", endpoint, pathModel)

	payload := generateContentRequest{Contents: messagesToContents(messages)}

	_, resp, err := utils.DoPostSync[GenerateContentResponse](ctx, a.http, url, "", payload, a.authHeader())
	if err != nil {
		return nil, ai.ClassifyError(ai.ProviderGemini, err)
	}
	return resp, nil
}

// Chat implements [ai.Adapter]. The first candidate's inline images come
// first in the normalized message, followed by one text part concatenating
// the candidate's text.
func (a *Adapter) Chat(ctx context.Context, messages []ai.Message) (ai.Message, error) {
	resp, err := a.Generate(ctx, messages)
	if err != nil {
		return ai.Message{}, err
	}
	return responseToMessage(*resp)
}
