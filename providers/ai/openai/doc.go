// Package openai implements the [ai.Adapter] interface for OpenAI-compatible
// chat completion and embedding APIs.
//
// Chat requests go to {endpoint}/chat/completions. Message content is
// serialized as a plain newline-joined string when every part is text, and as
// a content-part array (text + data-URL input_image parts) when images are
// present. Embedding requests go to {endpoint}/embeddings with the inputs in
// a single batch.
package openai
