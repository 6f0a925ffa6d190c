package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/providers/ai"
)

// defaultImageMime is assumed for image parts with no source path to guess from.
const defaultImageMime = "image/png"

// messagesToWire converts canonical messages to the chat/completions layout.
func messagesToWire(messages []ai.Message) []wireMessage {
	wire := make([]wireMessage, 0, len(messages))
	for _, message := range messages {
		wire = append(wire, messageToWire(message))
	}
	return wire
}

// messageToWire serializes one message. When every part is text the content
// is a plain newline-joined string; as soon as an image is present the
// content becomes a part array mixing text and data-URL input_image entries.
// An empty content list collapses to the empty string, never an empty array.
func messageToWire(message ai.Message) wireMessage {
	role := wireRole(message.Role)

	var parts []contentPart
	var textSegments []string
	onlyText := true

	for _, part := range message.Content {
		switch part.Type {
		case ai.PartText:
			text := part.Text
			textSegments = append(textSegments, text)
			parts = append(parts, contentPart{Type: "text", Text: &text})

		case ai.PartImage:
			if part.Image == nil {
				continue
			}
			onlyText = false
			mime := defaultImageMime
			if part.Image.SourcePath != "" {
				mime = utils.DetectMime(part.Image.SourcePath, defaultImageMime)
			}
			parts = append(parts, contentPart{
				Type: "input_image",
				ImageURL: &imageURLPart{
					URL: fmt.Sprintf("data:%s;base64,%s", mime, part.Image.Data),
				},
			})
		}
	}

	if len(parts) == 0 {
		return wireMessage{Role: role, Content: ""}
	}
	if onlyText {
		return wireMessage{Role: role, Content: strings.Join(textSegments, "\n")}
	}
	return wireMessage{Role: role, Content: parts}
}

func wireRole(role ai.Role) string {
	switch role {
	case ai.RoleAI:
		return "assistant"
	case ai.RoleSystem:
		return "system"
	default:
		return "user"
	}
}

// responseToMessage normalizes a chat/completions response into a canonical
// message, consuming only the first choice. The response content is either a
// plain string (wrapped as one text part) or a part array parsed by tag.
func responseToMessage(response chatCompletionResponse) (ai.Message, error) {
	if len(response.Choices) == 0 {
		return ai.Message{}, ai.SemanticError(ai.ProviderOpenAI, "no choices returned")
	}

	choice := response.Choices[0]
	role := choice.Message.Role
	if role == "" {
		role = "assistant"
	}

	parts, err := parseContent(choice.Message.Content)
	if err != nil {
		return ai.Message{}, &ai.Error{Kind: ai.ErrDecode, Provider: ai.ProviderOpenAI, Err: err}
	}
	if len(parts) == 0 {
		parts = append(parts, ai.Text(""))
	}

	return ai.NewMessage(response.ID, role, parts), nil
}

// parseContent decodes the raw content field, which is a JSON string, a part
// array, or absent.
func parseContent(raw json.RawMessage) ([]ai.Part, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("decoding string content: %w", err)
		}
		return []ai.Part{ai.Text(text)}, nil
	}

	var wireParts []responsePart
	if err := json.Unmarshal(raw, &wireParts); err != nil {
		return nil, fmt.Errorf("decoding content parts: %w", err)
	}
	return partsToCanonical(wireParts), nil
}

// partsToCanonical maps returned content parts by tag. Image parts carry
// base64 either directly or inside a data: URL; unknown tags degrade to a
// text part carrying whatever is salvageable so nothing is dropped silently.
func partsToCanonical(wireParts []responsePart) []ai.Part {
	var parts []ai.Part

	for _, part := range wireParts {
		switch part.Type {
		case "text", "output_text":
			parts = append(parts, ai.Text(part.Text))

		case "output_image", "input_image":
			switch {
			case part.ImageBase64 != "":
				parts = append(parts, ai.Image(part.ImageBase64))
			case part.ImageURL != nil:
				if data, ok := extractDataURLBase64(part.ImageURL.URL); ok {
					parts = append(parts, ai.Image(data))
				} else {
					parts = append(parts, ai.Text(part.ImageURL.URL))
				}
			}

		default:
			fallback := part.Text
			if fallback == "" {
				fallback = part.ImageBase64
			}
			if fallback == "" {
				fallback = fmt.Sprintf("Unsupported OpenAI content type: %s", part.Type)
			}
			parts = append(parts, ai.Text(fallback))
		}
	}

	return parts
}

// extractDataURLBase64 returns the base64 payload of a data: URL, i.e.
// everything after the first comma.
func extractDataURLBase64(url string) (string, bool) {
	i := strings.IndexByte(url, ',')
	if i < 0 {
		return "", false
	}
	return url[i+1:], true
}
