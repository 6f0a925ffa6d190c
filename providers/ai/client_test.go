package ai

import "testing"

func TestParseProviderName(t *testing.T) {
	tests := []struct {
		input   string
		want    ProviderName
		wantErr bool
	}{
		{input: "openai", want: ProviderOpenAI},
		{input: "OpenAI", want: ProviderOpenAI},
		{input: " anthropic ", want: ProviderAnthropic},
		{input: "gemini", want: ProviderGemini},
		{input: "mistral", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseProviderName(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseProviderName(%q): expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseProviderName(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProviderName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClientAccessors(t *testing.T) {
	client := NewClient(ProviderOpenAI, "key", "https://api.example.com/v1", "gpt-4o", CallChat)

	if client.Provider() != ProviderOpenAI {
		t.Errorf("unexpected provider %q", client.Provider())
	}
	if client.APIKey() != "key" {
		t.Errorf("unexpected api key %q", client.APIKey())
	}
	if client.Endpoint() != "https://api.example.com/v1" {
		t.Errorf("unexpected endpoint %q", client.Endpoint())
	}
	if client.DefaultModel() != "gpt-4o" {
		t.Errorf("unexpected model %q", client.DefaultModel())
	}
	if client.Kind() != CallChat {
		t.Errorf("unexpected kind %q", client.Kind())
	}
}
