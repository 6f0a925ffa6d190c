package anthropic

import "encoding/json"

/*
	ANTHROPIC MESSAGES API - REQUEST TYPES
*/

type messagesRequest struct {
	Model     string        `json:"model"`
	Messages  []wireMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
}

type wireMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

// contentBlock uses a pointer for Text so an empty text block still
// serializes as {"type":"text","text":""} while image blocks omit the field.
type contentBlock struct {
	Type   string       `json:"type"`
	Text   *string      `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

/*
	ANTHROPIC MESSAGES API - RESPONSE TYPES
*/

type messagesResponse struct {
	ID      string          `json:"id"`
	Role    string          `json:"role"`
	Content []responseBlock `json:"content"`
}

// responseBlock is one returned content block. The raw JSON is retained so
// blocks with unknown type tags can be surfaced verbatim instead of dropped.
type responseBlock struct {
	Type   string
	Text   string
	Source *responseSource

	raw json.RawMessage
}

type responseSource struct {
	Data string `json:"data"`
}

func (b *responseBlock) UnmarshalJSON(data []byte) error {
	var decoded struct {
		Type   string          `json:"type"`
		Text   string          `json:"text"`
		Source *responseSource `json:"source"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	b.Type = decoded.Type
	b.Text = decoded.Text
	b.Source = decoded.Source
	b.raw = append([]byte(nil), data...)
	return nil
}
