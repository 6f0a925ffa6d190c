package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptlab/llmbridge/providers/ai"
)

func newTestAdapter(t *testing.T, model string, handler http.HandlerFunc) *Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := ai.NewClient(ai.ProviderGemini, "test-key", server.URL, model, ai.CallChat)
	return New(client).WithHTTPClient(server.Client())
}

func TestGenerateURLAndAuth(t *testing.T) {
	var gotPath, gotKey string

	adapter := newTestAdapter(t, "models/gemini-2.5-flash", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "hi"}], "role": "model"}}], "responseId": "r1"}`))
	})

	reply, err := adapter.Chat(context.Background(), []ai.Message{
		ai.NewMessage("", "user", []ai.Part{ai.Text("hello")}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/gemini-2.5-flash:generateContent" {
		t.Errorf("expected normalized model in path, got %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("expected x-goog-api-key header, got %q", gotKey)
	}
	if reply.JoinedText() != "hi" {
		t.Errorf("unexpected reply %q", reply.JoinedText())
	}
}

func TestEmbedSingleUsesEmbedContent(t *testing.T) {
	var gotPath string
	var got embedContentRequest

	adapter := newTestAdapter(t, "text-embedding-004", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Write([]byte(`{"embedding": {"values": [0.1, 0.2]}}`))
	})

	vectors, err := adapter.Embed(context.Background(), []string{"alpha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/text-embedding-004:embedContent" {
		t.Errorf("expected single-input endpoint, got %q", gotPath)
	}
	if got.Model != "models/text-embedding-004" {
		t.Errorf("expected prefixed model in body, got %q", got.Model)
	}
	if len(vectors) != 1 || len(vectors[0]) != 2 {
		t.Errorf("unexpected vectors: %v", vectors)
	}
}

func TestEmbedBatchUsesBatchEndpoint(t *testing.T) {
	var gotPath string
	var got batchEmbedRequest

	adapter := newTestAdapter(t, "text-embedding-004", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Write([]byte(`{"embeddings": [{"values": [0.1]}, {"values": [0.2]}]}`))
	})

	vectors, err := adapter.Embed(context.Background(), []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/text-embedding-004:batchEmbedContents" {
		t.Errorf("expected batch endpoint, got %q", gotPath)
	}
	if len(got.Requests) != 2 {
		t.Errorf("expected 2 batched requests, got %d", len(got.Requests))
	}
	if len(vectors) != 2 || vectors[0][0] != 0.1 || vectors[1][0] != 0.2 {
		t.Errorf("unexpected vectors: %v", vectors)
	}
}

func TestEmbedUsageOnlyResponseIsSemanticError(t *testing.T) {
	adapter := newTestAdapter(t, "text-embedding-004", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"usageMetadata": {"promptTokenCount": 3, "totalTokenCount": 3}}`))
	})

	_, err := adapter.Embed(context.Background(), []string{"alpha"})
	if err == nil {
		t.Fatal("expected error for usage-only response")
	}

	var adapterErr *ai.Error
	if !errors.As(err, &adapterErr) {
		t.Fatalf("expected *ai.Error, got %T", err)
	}
	if adapterErr.Kind != ai.ErrSemantic {
		t.Errorf("expected semantic kind, got %q", adapterErr.Kind)
	}
}

func TestEmbedEmptyInputSkipsNetwork(t *testing.T) {
	adapter := newTestAdapter(t, "text-embedding-004", func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	})

	vectors, err := adapter.Embed(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 0 {
		t.Errorf("expected empty result, got %v", vectors)
	}
}
