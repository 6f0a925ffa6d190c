// Package anthropic implements the [ai.Adapter] interface for Anthropic's
// Messages API.
//
// System-role messages are not sent as ordinary turns: their text is
// extracted, joined with newlines, and shipped in the dedicated top-level
// system field. Message content is always a content-block array — never a
// bare string — and an empty content list is replaced with one empty text
// block to satisfy the API's non-empty-content requirement.
//
// Anthropic exposes no embedding endpoint; [Adapter.Embed] returns a semantic
// error which the dispatch layer degrades to an empty result.
package anthropic
