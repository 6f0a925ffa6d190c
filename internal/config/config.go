// Package config loads the application configuration: provider credentials
// and endpoints, the workspace directory, and the default provider. Values
// come from built-in defaults, overlaid by an optional TOML file, overlaid by
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/promptlab/llmbridge/providers/ai"
)

// Default provider endpoints.
const (
	DefaultOpenAIEndpoint    = "https://api.openai.com/v1"
	DefaultAnthropicEndpoint = "https://api.anthropic.com/v1"
	DefaultGeminiEndpoint    = "https://generativelanguage.googleapis.com/v1beta/models"
)

// Config is the complete application configuration.
type Config struct {
	// DefaultProvider is used when a command does not name one.
	DefaultProvider string `toml:"default_provider"`
	// LibraryDir is the workspace root for image libraries, prompt templates
	// and generation logs.
	LibraryDir string `toml:"library_dir"`

	OpenAI    ProviderConfig `toml:"openai"`
	Anthropic ProviderConfig `toml:"anthropic"`
	Gemini    ProviderConfig `toml:"gemini"`
}

// ProviderConfig holds the per-provider connection settings.
type ProviderConfig struct {
	APIKey   string `toml:"api_key"`
	Endpoint string `toml:"endpoint"`
	Model    string `toml:"model"`
}

// Default returns the built-in configuration: public endpoints, current
// directory workspace, Gemini as provider.
func Default() Config {
	return Config{
		DefaultProvider: string(ai.ProviderGemini),
		LibraryDir:      ".",
		OpenAI: ProviderConfig{
			Endpoint: DefaultOpenAIEndpoint,
			Model:    "gpt-4o-mini",
		},
		Anthropic: ProviderConfig{
			Endpoint: DefaultAnthropicEndpoint,
			Model:    "claude-sonnet-4-5",
		},
		Gemini: ProviderConfig{
			Endpoint: DefaultGeminiEndpoint,
			Model:    "gemini-2.5-flash",
		},
	}
}

// Load builds the effective configuration. A missing file is not an error —
// defaults plus environment apply. Environment variables override everything:
// OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY for credentials, and
// LLMBRIDGE_PROVIDER / LLMBRIDGE_LIBRARY_DIR for the general settings.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &config); err != nil {
				return Config{}, fmt.Errorf("unable to parse config file %q: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("unable to read config file %q: %w", path, err)
		}
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	if value := os.Getenv("OPENAI_API_KEY"); value != "" {
		c.OpenAI.APIKey = value
	}
	if value := os.Getenv("ANTHROPIC_API_KEY"); value != "" {
		c.Anthropic.APIKey = value
	}
	if value := os.Getenv("GEMINI_API_KEY"); value != "" {
		c.Gemini.APIKey = value
	}
	if value := os.Getenv("LLMBRIDGE_PROVIDER"); value != "" {
		c.DefaultProvider = value
	}
	if value := os.Getenv("LLMBRIDGE_LIBRARY_DIR"); value != "" {
		c.LibraryDir = value
	}
}

// Provider returns the settings block for the named provider.
func (c Config) Provider(name ai.ProviderName) (ProviderConfig, error) {
	switch name {
	case ai.ProviderOpenAI:
		return c.OpenAI, nil
	case ai.ProviderAnthropic:
		return c.Anthropic, nil
	case ai.ProviderGemini:
		return c.Gemini, nil
	default:
		return ProviderConfig{}, fmt.Errorf("unknown provider %q", name)
	}
}

// Client assembles an [ai.Client] for the named provider, or for the
// configured default when name is empty.
func (c Config) Client(name string, kind ai.CallKind) (ai.Client, error) {
	if strings.TrimSpace(name) == "" {
		name = c.DefaultProvider
	}
	provider, err := ai.ParseProviderName(name)
	if err != nil {
		return ai.Client{}, err
	}

	settings, err := c.Provider(provider)
	if err != nil {
		return ai.Client{}, err
	}
	if settings.APIKey == "" {
		return ai.Client{}, fmt.Errorf("no API key configured for provider %q", provider)
	}

	return ai.NewClient(provider, settings.APIKey, settings.Endpoint, settings.Model, kind), nil
}
