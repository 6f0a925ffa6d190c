package ai

import (
	"fmt"
	"strings"
)

// ProviderName identifies one of the supported LLM providers.
type ProviderName string

const (
	ProviderOpenAI    ProviderName = "openai"
	ProviderAnthropic ProviderName = "anthropic"
	ProviderGemini    ProviderName = "gemini"
)

// ParseProviderName resolves a free-text provider identifier.
func ParseProviderName(name string) (ProviderName, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openai":
		return ProviderOpenAI, nil
	case "anthropic":
		return ProviderAnthropic, nil
	case "gemini":
		return ProviderGemini, nil
	}
	return "", fmt.Errorf("unknown provider %q", name)
}

// CallKind records what a client configuration is intended for.
type CallKind string

const (
	CallChat      CallKind = "chat"
	CallEmbedding CallKind = "embedding"
)

// Client is an immutable description of one provider session: which provider,
// credentials, endpoint, default model, and call kind. It is a value type,
// created once per logical session, never mutated afterwards, and safe to
// share by copy across concurrent calls without locking.
type Client struct {
	provider     ProviderName
	apiKey       string
	endpoint     string
	defaultModel string
	kind         CallKind
}

// NewClient builds a client configuration. The endpoint is the provider base
// URL; a trailing slash is tolerated and stripped by the adapters.
func NewClient(provider ProviderName, apiKey, endpoint, defaultModel string, kind CallKind) Client {
	return Client{
		provider:     provider,
		apiKey:       apiKey,
		endpoint:     endpoint,
		defaultModel: defaultModel,
		kind:         kind,
	}
}

// Provider returns the provider this client targets.
func (c Client) Provider() ProviderName { return c.provider }

// APIKey returns the credential used to authenticate requests.
func (c Client) APIKey() string { return c.apiKey }

// Endpoint returns the provider base URL.
func (c Client) Endpoint() string { return c.endpoint }

// DefaultModel returns the model identifier sent with every request.
func (c Client) DefaultModel() string { return c.defaultModel }

// Kind returns whether this configuration is meant for chat or embedding.
func (c Client) Kind() CallKind { return c.kind }
