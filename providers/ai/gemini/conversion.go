package gemini

import (
	"strings"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/providers/ai"
)

// defaultImageMime is assumed for image parts with no source path to guess from.
const defaultImageMime = "image/jpeg"

// messagesToContents converts canonical messages to the Gemini contents
// array. System messages stay inline with role "system" — no side-channel
// extraction.
func messagesToContents(messages []ai.Message) []content {
	contents := make([]content, 0, len(messages))
	for _, message := range messages {
		contents = append(contents, content{
			Role:  wireRole(message.Role),
			Parts: partsToWire(message.Content),
		})
	}
	return contents
}

func wireRole(role ai.Role) string {
	switch role {
	case ai.RoleAI:
		return "model"
	case ai.RoleSystem:
		return "system"
	default:
		return "user"
	}
}

// partsToWire mirrors the canonical content order. An empty part list is
// replaced with one empty text part so the wire payload never carries an
// empty parts array.
func partsToWire(parts []ai.Part) []part {
	var wire []part

	for _, p := range parts {
		switch p.Type {
		case ai.PartText:
			text := p.Text
			wire = append(wire, part{Text: &text})

		case ai.PartImage:
			if p.Image == nil {
				continue
			}
			mime := defaultImageMime
			if p.Image.SourcePath != "" {
				mime = utils.DetectMime(p.Image.SourcePath, defaultImageMime)
			}
			wire = append(wire, part{
				InlineData: &inlineData{
					MimeType: mime,
					Data:     p.Image.Data,
				},
			})
		}
	}

	if len(wire) == 0 {
		empty := ""
		wire = append(wire, part{Text: &empty})
	}
	return wire
}

// responseToMessage normalizes a generateContent response: the first
// candidate's inline images are collected first (one image part each),
// followed by a single text part concatenating the text of all that
// candidate's parts. The absence of any candidate is a semantic failure.
func responseToMessage(response GenerateContentResponse) (ai.Message, error) {
	if len(response.Candidates) == 0 {
		return ai.Message{}, ai.SemanticError(ai.ProviderGemini, "no candidates returned")
	}

	candidate := response.Candidates[0]

	var parts []ai.Part
	var text strings.Builder
	for _, p := range candidate.Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			parts = append(parts, ai.Image(p.InlineData.Data))
		}
		text.WriteString(p.Text)
	}
	parts = append(parts, ai.Text(text.String()))

	return ai.NewMessage(response.ResponseID, "ai", parts), nil
}

// normalizeModelID returns the bare model id used in the URL path and the
// "models/" prefixed id required in embedding request bodies.
func normalizeModelID(model string) (pathModel, requestModel string) {
	pathModel = strings.TrimPrefix(model, "models/")
	return pathModel, "models/" + pathModel
}
