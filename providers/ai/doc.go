// Package ai defines the shared, provider-agnostic types used across all LLM
// provider adapters (OpenAI, Anthropic, Gemini). Each adapter's conversion
// layer is responsible for mapping these types to its own wire format, keeping
// the rest of the codebase decoupled from provider-specific details.
//
// The central interface is [Adapter], covering the two capabilities every
// provider exposes: chat completion and text embedding. Conversations are
// carried as ordered [Message] values whose content is a sequence of [Part]
// values (text or inline base64 images). A [Client] value describes which
// provider to talk to and with what credentials; it is immutable and safe to
// share by copy across concurrent calls.
package ai
