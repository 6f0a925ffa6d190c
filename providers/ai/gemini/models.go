package gemini

/*
	GEMINI API - REQUEST TYPES
*/

// generateContentRequest is the body POSTed to {model}:generateContent.
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

// part uses a pointer for Text so an empty text part still serializes as
// {"text": ""} while image parts omit the field entirely.
type part struct {
	Text       *string     `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// embedContentRequest is the body POSTed to {model}:embedContent.
type embedContentRequest struct {
	Model   string       `json:"model"`
	Content embedContent `json:"content"`
}

type embedContent struct {
	Parts []part `json:"parts"`
}

// batchEmbedRequest is the body POSTed to {model}:batchEmbedContents.
type batchEmbedRequest struct {
	Requests []embedContentRequest `json:"requests"`
}

/*
	GEMINI API - RESPONSE TYPES

	The generateContent response types are exported: the image-generation
	studio consumes inline image data and MIME types directly from them.
*/

// GenerateContentResponse is the decoded generateContent response.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
	ResponseID string      `json:"responseId"`
}

// Candidate is one generated alternative.
type Candidate struct {
	Content      CandidateContent `json:"content"`
	FinishReason string           `json:"finishReason"`
}

// CandidateContent holds the parts of one candidate.
type CandidateContent struct {
	Parts []ResponsePart `json:"parts"`
	Role  string         `json:"role"`
}

// ResponsePart is one returned part: text, inline binary data, or both empty.
type ResponsePart struct {
	Text       string      `json:"text"`
	InlineData *InlineData `json:"inlineData"`
}

// InlineData carries base64-encoded binary output (generated images).
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// usageMetadata is present on embedding responses even when no vectors were
// produced; its presence alone does not make a response usable.
type usageMetadata struct {
	PromptTokenCount int `json:"promptTokenCount"`
	TotalTokenCount  int `json:"totalTokenCount"`
}

type embedContentResponse struct {
	Embedding     *embeddingValues `json:"embedding"`
	UsageMetadata *usageMetadata   `json:"usageMetadata"`
}

type batchEmbedResponse struct {
	Embeddings    []embeddingValues `json:"embeddings"`
	UsageMetadata *usageMetadata    `json:"usageMetadata"`
}

type embeddingValues struct {
	Values []float32 `json:"values"`
}
