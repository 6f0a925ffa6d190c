package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/providers/ai"
)

// Embed implements [ai.Adapter]. A single input uses {model}:embedContent,
// two or more use {model}:batchEmbedContents. A response that carries only
// usage metadata — no embedding values — is reported as a failure, never as
// zero vectors.
func (a *Adapter) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	endpoint := strings.TrimRight(a.client.Endpoint(), "/")
	pathModel, requestModel := normalizeModelID(a.client.DefaultModel())

	if len(texts) == 1 {
		url := fmt.Sprintf("%s/%s:embedContent", endpoint, pathModel)
		payload := buildEmbedRequest(texts[0], requestModel)

		_, resp, err := utils.DoPostSync[embedContentResponse](ctx, a.http, url, "", payload, a.authHeader())
		if err != nil {
			return nil, ai.ClassifyError(ai.ProviderGemini, err)
		}
		if resp.Embedding == nil {
			return nil, ai.SemanticError(ai.ProviderGemini, "usage metadata only, no embedding produced")
		}
		return [][]float32{resp.Embedding.Values}, nil
	}

	url := fmt.Sprintf("%s/%s:batchEmbedContents", endpoint, pathModel)
	payload := batchEmbedRequest{}
	for _, text := range texts {
		payload.Requests = append(payload.Requests, buildEmbedRequest(text, requestModel))
	}

	_, resp, err := utils.DoPostSync[batchEmbedResponse](ctx, a.http, url, "", payload, a.authHeader())
	if err != nil {
		return nil, ai.ClassifyError(ai.ProviderGemini, err)
	}
	if resp.Embeddings == nil {
		return nil, ai.SemanticError(ai.ProviderGemini, "usage metadata only, no embeddings produced")
	}

	vectors := make([][]float32, 0, len(resp.Embeddings))
	for _, embedding := range resp.Embeddings {
		vectors = append(vectors, embedding.Values)
	}
	return vectors, nil
}

func buildEmbedRequest(text, requestModel string) embedContentRequest {
	return embedContentRequest{
		Model:   requestModel,
		Content: embedContent{Parts: []part{{Text: &text}}},
	}
}
