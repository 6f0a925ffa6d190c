package anthropic

import (
	"fmt"
	"strings"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/providers/ai"
)

// defaultImageMime is assumed for image parts with no source path to guess from.
const defaultImageMime = "image/png"

// messagesToWire splits the conversation into ordinary turns and the
// side-channel system prompt. System-role messages contribute their text
// (parts joined with newlines per message, non-empty messages joined with
// newlines overall) to the returned system string and never appear in the
// message array.
func messagesToWire(messages []ai.Message) ([]wireMessage, string) {
	var systemSegments []string
	var wire []wireMessage

	for _, message := range messages {
		if message.Role == ai.RoleSystem {
			if text := message.JoinedText(); text != "" {
				systemSegments = append(systemSegments, text)
			}
			continue
		}

		role := "user"
		if message.Role == ai.RoleAI {
			role = "assistant"
		}
		wire = append(wire, wireMessage{
			Role:    role,
			Content: contentToBlocks(message.Content),
		})
	}

	return wire, strings.Join(systemSegments, "\n")
}

// contentToBlocks converts canonical parts to Anthropic content blocks. The
// result is never empty: the API rejects empty content arrays, so an empty
// part list is replaced with a single empty text block.
func contentToBlocks(parts []ai.Part) []contentBlock {
	var blocks []contentBlock

	for _, part := range parts {
		switch part.Type {
		case ai.PartText:
			text := part.Text
			blocks = append(blocks, contentBlock{Type: "text", Text: &text})

		case ai.PartImage:
			if part.Image == nil {
				continue
			}
			mime := defaultImageMime
			if part.Image.SourcePath != "" {
				mime = utils.DetectMime(part.Image.SourcePath, defaultImageMime)
			}
			blocks = append(blocks, contentBlock{
				Type: "image",
				Source: &imageSource{
					Type:      "base64",
					MediaType: mime,
					Data:      part.Image.Data,
				},
			})
		}
	}

	if len(blocks) == 0 {
		empty := ""
		blocks = append(blocks, contentBlock{Type: "text", Text: &empty})
	}
	return blocks
}

// responseToMessage normalizes a Messages API response. Blocks are parsed by
// tag; unknown tags degrade to a text part carrying the raw block JSON (or a
// diagnostic string when the raw form is unavailable) so nothing is dropped
// silently. An empty result is replaced with one empty text part.
func responseToMessage(response messagesResponse) ai.Message {
	role := response.Role
	if role == "" {
		role = "assistant"
	}

	var parts []ai.Part
	for _, block := range response.Content {
		switch block.Type {
		case "text":
			parts = append(parts, ai.Text(block.Text))

		case "image":
			if block.Source != nil && block.Source.Data != "" {
				parts = append(parts, ai.Image(block.Source.Data))
			}

		default:
			fallback := string(block.raw)
			if fallback == "" {
				fallback = fmt.Sprintf("Unsupported Anthropic content type: %s", block.Type)
			}
			parts = append(parts, ai.Text(fallback))
		}
	}

	if len(parts) == 0 {
		parts = append(parts, ai.Text(""))
	}

	return ai.NewMessage(response.ID, role, parts)
}
