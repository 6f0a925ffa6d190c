package anthropic

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/promptlab/llmbridge/providers/ai"
)

func TestMessagesToWire_SystemSideChannel(t *testing.T) {
	messages := []ai.Message{
		ai.NewMessage("", "system", []ai.Part{ai.Text("a")}),
		ai.NewMessage("", "system", []ai.Part{ai.Text("b")}),
		ai.NewMessage("", "user", []ai.Part{ai.Text("hi")}),
	}

	wire, system := messagesToWire(messages)

	if system != "a\nb" {
		t.Errorf("expected system %q, got %q", "a\nb", system)
	}
	if len(wire) != 1 {
		t.Fatalf("expected 1 wire message, got %d", len(wire))
	}
	if wire[0].Role != "user" {
		t.Errorf("expected user role, got %q", wire[0].Role)
	}
}

func TestMessagesToWire_EmptySystemIsSkipped(t *testing.T) {
	messages := []ai.Message{
		ai.NewMessage("", "system", nil),
		ai.NewMessage("", "user", []ai.Part{ai.Text("hi")}),
	}

	_, system := messagesToWire(messages)
	if system != "" {
		t.Errorf("expected empty system, got %q", system)
	}
}

func TestMessagesToWire_RoleMapping(t *testing.T) {
	messages := []ai.Message{
		ai.NewMessage("", "user", []ai.Part{ai.Text("q")}),
		ai.NewMessage("", "assistant", []ai.Part{ai.Text("a")}),
	}

	wire, _ := messagesToWire(messages)
	if len(wire) != 2 || wire[0].Role != "user" || wire[1].Role != "assistant" {
		t.Errorf("unexpected roles: %+v", wire)
	}
}

func TestContentToBlocks_EmptyBecomesOneEmptyTextBlock(t *testing.T) {
	blocks := contentToBlocks(nil)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Type != "text" || blocks[0].Text == nil || *blocks[0].Text != "" {
		t.Errorf("unexpected block: %+v", blocks[0])
	}

	// The empty text key must survive serialization.
	payload, err := json.Marshal(blocks[0])
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(payload), `"text":""`) {
		t.Errorf("expected empty text key in %s", payload)
	}
}

func TestContentToBlocks_ImageSource(t *testing.T) {
	blocks := contentToBlocks([]ai.Part{ai.ImageWithPath("aGVsbG8=", "scan.webp")})

	if len(blocks) != 1 || blocks[0].Type != "image" || blocks[0].Source == nil {
		t.Fatalf("unexpected blocks: %+v", blocks)
	}
	source := blocks[0].Source
	if source.Type != "base64" || source.MediaType != "image/webp" || source.Data != "aGVsbG8=" {
		t.Errorf("unexpected source: %+v", source)
	}
}

func TestResponseToMessage_UnknownBlockKeepsRawJSON(t *testing.T) {
	body := `{
		"id": "msg_1",
		"role": "assistant",
		"content": [
			{"type": "text", "text": "hello"},
			{"type": "tool_use", "name": "calculator", "input": {"a": 1}}
		]
	}`

	var response messagesResponse
	if err := json.Unmarshal([]byte(body), &response); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	message := responseToMessage(response)

	if message.ID != "msg_1" || message.Role != ai.RoleAI {
		t.Errorf("unexpected message header: id=%q role=%q", message.ID, message.Role)
	}
	if len(message.Content) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(message.Content))
	}
	if message.Content[0].Text != "hello" {
		t.Errorf("unexpected text part: %+v", message.Content[0])
	}
	if !strings.Contains(message.Content[1].Text, "tool_use") {
		t.Errorf("expected raw JSON fallback, got %q", message.Content[1].Text)
	}
}

func TestResponseToMessage_EmptyContent(t *testing.T) {
	message := responseToMessage(messagesResponse{ID: "msg_2"})

	if message.Role != ai.RoleAI {
		t.Errorf("expected default assistant role, got %q", message.Role)
	}
	if len(message.Content) != 1 || message.Content[0].Type != ai.PartText || message.Content[0].Text != "" {
		t.Errorf("expected one empty text part, got %+v", message.Content)
	}
}
