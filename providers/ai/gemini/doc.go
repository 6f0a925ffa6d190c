// Package gemini implements the [ai.Adapter] interface for Google's Gemini
// generateContent and embedding APIs.
//
// Chat requests go to {endpoint}/{model}:generateContent with the
// x-goog-api-key header. Roles map Human→user, AI→model and System→"system"
// sent inline in the contents array — Gemini has a separate systemInstruction
// channel, but this adapter deliberately preserves the inline form.
//
// Embeddings use {model}:embedContent for a single input and
// {model}:batchEmbedContents for two or more; the model id is normalized once
// so the URL path carries the bare id while the request body carries the
// "models/" prefixed form. A response containing only usage metadata is an
// explicit failure, never an empty success.
//
// [Adapter.Generate] exposes the decoded generateContent response directly
// for callers that need raw inline image data and MIME types, such as the
// image-generation studio.
package gemini
