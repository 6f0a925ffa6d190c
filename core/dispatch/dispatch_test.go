package dispatch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/promptlab/llmbridge/providers/ai"
	"github.com/promptlab/llmbridge/providers/observability"
)

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestChatNeverFails(t *testing.T) {
	server := failingServer(t)

	providers := []ai.ProviderName{ai.ProviderOpenAI, ai.ProviderAnthropic, ai.ProviderGemini}
	for _, provider := range providers {
		t.Run(string(provider), func(t *testing.T) {
			client := ai.NewClient(provider, "test-key", server.URL, "test-model", ai.CallChat)
			chat := Chat(client)

			reply := chat(context.Background(), []ai.Message{
				ai.NewMessage("", "user", []ai.Part{ai.Text("hello")}),
			})

			if reply.Role != ai.RoleSystem {
				t.Fatalf("expected system role on failure, got %q", reply.Role)
			}
			if reply.JoinedText() == "" {
				t.Fatal("expected diagnostic text in synthesized message")
			}
		})
	}
}

func TestEmbeddingDegradesToEmpty(t *testing.T) {
	server := failingServer(t)

	providers := []ai.ProviderName{ai.ProviderOpenAI, ai.ProviderGemini}
	for _, provider := range providers {
		t.Run(string(provider), func(t *testing.T) {
			client := ai.NewClient(provider, "test-key", server.URL, "test-model", ai.CallEmbedding)
			embed := Embedding(client)

			vectors := embed(context.Background(), []string{"alpha", "beta"})
			if len(vectors) != 0 {
				t.Fatalf("expected empty result on failure, got %d vectors", len(vectors))
			}
		})
	}
}

func TestEmbeddingAnthropicAlwaysEmpty(t *testing.T) {
	client := ai.NewClient(ai.ProviderAnthropic, "test-key", "http://unused.invalid", "test-model", ai.CallEmbedding)
	embed := Embedding(client)

	vectors := embed(context.Background(), []string{"alpha"})
	if len(vectors) != 0 {
		t.Fatalf("expected empty result for anthropic embeddings, got %d vectors", len(vectors))
	}
}

func observedContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := observability.WithObserver(context.Background(), observability.NewSlogObserver(logger))
	return ctx, &buf
}

func TestChatRecordsSpan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"resp-1","choices":[{"message":{"role":"assistant","content":"hi there"}}]}`))
	}))
	t.Cleanup(server.Close)

	ctx, buf := observedContext(t)
	client := ai.NewClient(ai.ProviderOpenAI, "test-key", server.URL, "test-model", ai.CallChat)

	reply := Chat(client)(ctx, []ai.Message{
		ai.NewMessage("", "user", []ai.Part{ai.Text("hello")}),
	})
	if reply.JoinedText() != "hi there" {
		t.Fatalf("unexpected reply text %q", reply.JoinedText())
	}

	out := buf.String()
	wants := []string{
		"span=dispatch.chat",
		"http.request.prepared",
		"http.url=" + server.URL,
		"http.response.received",
		"http.status_code=200",
		"http.request.duration=",
		"llm.response.parts_count=1",
		"status=ok",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("span output missing %q:\n%s", want, out)
		}
	}
}

func TestChatSpanRecordsFailure(t *testing.T) {
	server := failingServer(t)

	ctx, buf := observedContext(t)
	client := ai.NewClient(ai.ProviderOpenAI, "test-key", server.URL, "test-model", ai.CallChat)

	reply := Chat(client)(ctx, nil)
	if reply.Role != ai.RoleSystem {
		t.Fatalf("expected system role on failure, got %q", reply.Role)
	}

	out := buf.String()
	for _, want := range []string{"http.status_code=500", "status=error", "status.description=protocol"} {
		if !strings.Contains(out, want) {
			t.Errorf("span output missing %q:\n%s", want, out)
		}
	}
}

func TestEmbeddingRecordsSpan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"embedding":[0.1,0.2]},{"embedding":[0.3,0.4]}]}`))
	}))
	t.Cleanup(server.Close)

	ctx, buf := observedContext(t)
	client := ai.NewClient(ai.ProviderOpenAI, "test-key", server.URL, "test-model", ai.CallEmbedding)

	vectors := Embedding(client)(ctx, []string{"alpha", "beta"})
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}

	out := buf.String()
	for _, want := range []string{"span=dispatch.embedding", "llm.response.vectors_count=2", "status=ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("span output missing %q:\n%s", want, out)
		}
	}
}

func TestForUnknownProvider(t *testing.T) {
	client := ai.NewClient(ai.ProviderName("mystery"), "", "", "", ai.CallChat)
	adapter := For(client)

	_, err := adapter.Chat(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error from unsupported provider")
	}
	var adapterErr *ai.Error
	if !errors.As(err, &adapterErr) {
		t.Fatalf("expected *ai.Error, got %T", err)
	}
	if adapterErr.Kind != ai.ErrSemantic {
		t.Fatalf("expected semantic kind, got %q", adapterErr.Kind)
	}
}
