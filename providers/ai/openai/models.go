package openai

import "encoding/json"

/*
	OPENAI API - REQUEST TYPES
*/

// chatRequest is the body POSTed to /chat/completions.
type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []wireMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

// wireMessage carries either a plain string or a []contentPart in Content,
// matching the two content encodings the API accepts.
type wireMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// contentPart is one element of an outbound content-part array. Text is a
// pointer so an empty text part still serializes with its "text" key while
// image parts omit the field.
type contentPart struct {
	Type     string        `json:"type"`
	Text     *string       `json:"text,omitempty"`
	ImageURL *imageURLPart `json:"image_url,omitempty"`
}

type imageURLPart struct {
	URL string `json:"url"`
}

// embeddingRequest is the body POSTed to /embeddings.
type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

/*
	OPENAI API - RESPONSE TYPES
*/

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatChoiceMessage `json:"message"`
}

// chatChoiceMessage leaves Content raw because the API returns either a JSON
// string or an array of typed parts; the conversion layer inspects the shape.
type chatChoiceMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// responsePart is one element of a returned content-part array.
type responsePart struct {
	Type        string        `json:"type"`
	Text        string        `json:"text"`
	ImageURL    *imageURLPart `json:"image_url"`
	ImageBase64 string        `json:"image_base64"`
}

type embeddingResponse struct {
	Data []embeddingData `json:"data"`
}

type embeddingData struct {
	Embedding []float32 `json:"embedding"`
}
