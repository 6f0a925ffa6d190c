package commands

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/promptlab/llmbridge/studio"
)

// writeConfig writes a TOML config rooted in dir and returns its path.
func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "imagestudio.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGenerateUsesConfiguredEndpoint(t *testing.T) {
	imageData := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"` + imageData + `"}}]}}]}`))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, `library_dir = "`+dir+`"

[gemini]
api_key = "test-key"
endpoint = "`+server.URL+`"
`)

	if err := execute(t, "--config", cfgPath, "generate", "a fox"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if gotPath != "/"+studio.DefaultImageModel+":generateContent" {
		t.Errorf("expected request against configured endpoint, got path %q", gotPath)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "output"))
	if err != nil {
		t.Fatal(err)
	}
	var stored bool
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "image_") && strings.HasSuffix(entry.Name(), ".png") {
			stored = true
		}
	}
	if !stored {
		t.Errorf("expected generated image in output dir, found %v", entries)
	}
}

func TestPromptsShowJSON(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, `library_dir = "`+dir+`"
`)

	if err := execute(t, "--config", cfgPath, "prompts", "save", "fox", "-s", "be painterly", "-u", "a fox"); err != nil {
		t.Fatalf("prompts save failed: %v", err)
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		promptsShowJSON = false
	})

	if err := execute(t, "--config", cfgPath, "prompts", "show", "fox", "--json"); err != nil {
		t.Fatalf("prompts show failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"name":"fox"`, `"systemPrompt":"be painterly"`, `"userPrompt":"a fox"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
}
