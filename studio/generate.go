package studio

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/providers/ai"
	"github.com/promptlab/llmbridge/providers/ai/gemini"
	"github.com/promptlab/llmbridge/providers/observability"
)

// Defaults for the generation pipeline. The model and endpoint apply when the
// request leaves them empty; the mime type backstops reference images and
// provider responses that omit one.
const (
	DefaultImageModel     = "gemini-2.5-flash-image"
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultImageMime      = "image/png"
)

const (
	generationLogFile = "log.json"
	maxLogEntries     = 50
)

// GenerateRequest carries everything needed for one image generation call.
type GenerateRequest struct {
	APIKey          string           `json:"apiKey"`
	Model           string           `json:"model"`
	SystemPrompt    string           `json:"systemPrompt"`
	ImagePrompt     string           `json:"imagePrompt"`
	ReferenceImages []ReferenceImage `json:"referenceImages"`
	Size            string           `json:"size"`
	Quality         string           `json:"quality"`
	Style           string           `json:"style"`
	User            string           `json:"user"`
}

// ReferenceImage is one base64-encoded image attached to the generation
// prompt. Slot names the image's role in the prompt; FileName, when present,
// links the reference back to an input-library file for the log.
type ReferenceImage struct {
	MimeType   string `json:"mimeType"`
	DataBase64 string `json:"dataBase64"`
	Slot       string `json:"slot"`
	FileName   string `json:"fileName"`
}

// GenerateResult is the outcome of a successful generation: the stored output
// image plus the provider's revised prompt when it returned one.
type GenerateResult struct {
	Image         StoredImage `json:"image"`
	RevisedPrompt string      `json:"revisedPrompt"`
}

// GenerationLogEntry is one line of the rolling generation history kept in
// the output directory.
type GenerationLogEntry struct {
	Timestamp       int64    `json:"timestamp"`
	Prompt          string   `json:"prompt"`
	SystemPrompt    string   `json:"systemPrompt,omitempty"`
	ReferenceImages []string `json:"referenceImages"`
	OutputImage     string   `json:"outputImage"`
}

type generatedImage struct {
	mimeType      string
	base64        string
	revisedPrompt string
}

// Generate runs one image generation against Gemini, persists the result into
// the output library under a unique "image_<millis>.<ext>" name, and appends
// a history entry. The request's model may carry a "models/" prefix; it is
// stripped before the call.
func (s *Store) Generate(ctx context.Context, request GenerateRequest) (GenerateResult, error) {
	if strings.TrimSpace(request.ImagePrompt) == "" {
		return GenerateResult{}, errors.New("image prompt cannot be empty")
	}

	apiKey := strings.TrimSpace(request.APIKey)
	if apiKey == "" {
		return GenerateResult{}, errors.New("API key is required to generate images")
	}

	model := strings.TrimSpace(request.Model)
	if model == "" {
		model = DefaultImageModel
	}
	model = strings.TrimPrefix(model, "models/")

	messages, err := buildGenerateMessages(request)
	if err != nil {
		return GenerateResult{}, err
	}

	observability.FromContextOrDefault(ctx).Debug(ctx, "generating image",
		observability.String(observability.AttrLLMModel, model),
		observability.Int(observability.AttrRequestMessagesCount, len(messages)),
	)

	client := ai.NewClient(ai.ProviderGemini, apiKey, s.geminiEndpoint(), model, ai.CallChat)
	response, err := gemini.New(client).WithHTTPClient(s.httpClient()).Generate(ctx, messages)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("failed to request image generation: %w", err)
	}

	generated, err := extractGeneratedImage(response)
	if err != nil {
		return GenerateResult{}, err
	}

	stored, err := s.persistGeneratedImage(generated)
	if err != nil {
		return GenerateResult{}, err
	}

	entry := GenerationLogEntry{
		Timestamp:    time.Now().Unix(),
		Prompt:       strings.TrimSpace(request.ImagePrompt),
		SystemPrompt: strings.TrimSpace(request.SystemPrompt),
		OutputImage:  "output/" + stored.Name,
	}
	entry.ReferenceImages = make([]string, 0, len(request.ReferenceImages))
	for _, reference := range request.ReferenceImages {
		if reference.FileName != "" {
			entry.ReferenceImages = append(entry.ReferenceImages, "input/"+reference.FileName)
		}
	}
	if err := s.appendGenerationLog(entry); err != nil {
		return GenerateResult{}, err
	}

	return GenerateResult{Image: stored, RevisedPrompt: generated.revisedPrompt}, nil
}

// httpClient returns the client used for provider calls. Overridable for
// tests via [Store.WithHTTPClient].
func (s *Store) httpClient() *http.Client {
	if s.client != nil {
		return s.client
	}
	return http.DefaultClient
}

// WithHTTPClient replaces the HTTP client used for generation requests.
func (s *Store) WithHTTPClient(client *http.Client) *Store {
	s.client = client
	return s
}

func (s *Store) geminiEndpoint() string {
	if s.endpoint != "" {
		return s.endpoint
	}
	return DefaultGeminiEndpoint
}

// WithGeminiEndpoint replaces the provider base URL used for generation
// requests.
func (s *Store) WithGeminiEndpoint(endpoint string) *Store {
	s.endpoint = endpoint
	return s
}

// buildGenerateMessages assembles the provider conversation. The system
// prompt rides as a leading human turn rather than a system turn, matching
// how the image models are tuned; reference images precede the composed
// prompt inside a single human turn.
func buildGenerateMessages(request GenerateRequest) ([]ai.Message, error) {
	var messages []ai.Message

	if systemPrompt := strings.TrimSpace(request.SystemPrompt); systemPrompt != "" {
		messages = append(messages, ai.NewMessage("", "human", []ai.Part{ai.Text(systemPrompt)}))
	}

	var content []ai.Part
	for index, reference := range request.ReferenceImages {
		data := strings.TrimSpace(reference.DataBase64)
		if data == "" {
			continue
		}

		mimeType := strings.TrimSpace(reference.MimeType)
		if mimeType == "" {
			mimeType = DefaultImageMime
		}

		slot := strings.TrimSpace(reference.Slot)
		if slot == "" {
			slot = fmt.Sprintf("reference_%d", index)
		}
		pseudoPath := slot + "." + utils.ExtensionForMime(mimeType)

		content = append(content, ai.ImageWithPath(data, pseudoPath))
	}

	if prompt := composePrompt(request); prompt != "" {
		content = append(content, ai.Text(prompt))
	}

	if len(content) == 0 {
		return nil, errors.New("a prompt or reference image is required to generate content")
	}

	messages = append(messages, ai.NewMessage("", "human", content))
	return messages, nil
}

// composePrompt joins the free-form prompt with the structured style, quality,
// size and user hints into the single text block the provider receives.
func composePrompt(request GenerateRequest) string {
	var sections []string

	if prompt := strings.TrimSpace(request.ImagePrompt); prompt != "" {
		sections = append(sections, prompt)
	}

	var details []string
	if style := strings.TrimSpace(request.Style); style != "" {
		details = append(details, "Preferred style: "+style)
	}
	if quality := strings.TrimSpace(request.Quality); quality != "" {
		details = append(details, "Desired quality: "+quality)
	}
	if size := strings.TrimSpace(request.Size); size != "" {
		details = append(details, "Target dimensions or aspect ratio: "+size)
	}
	if user := strings.TrimSpace(request.User); user != "" {
		details = append(details, "Requested by user: "+user)
	}
	if len(details) > 0 {
		sections = append(sections, strings.Join(details, "\n"))
	}

	return strings.Join(sections, "\n\n")
}

// extractGeneratedImage pulls the first inline image out of the response,
// pairing it with the first non-empty text seen before it as the revised
// prompt.
func extractGeneratedImage(response *gemini.GenerateContentResponse) (generatedImage, error) {
	for _, candidate := range response.Candidates {
		var firstText string

		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil {
				mimeType := strings.TrimSpace(part.InlineData.MimeType)
				if mimeType == "" {
					mimeType = DefaultImageMime
				}

				data := strings.TrimSpace(part.InlineData.Data)
				if data == "" {
					continue
				}

				return generatedImage{
					mimeType:      mimeType,
					base64:        data,
					revisedPrompt: firstText,
				}, nil
			}

			if trimmed := strings.TrimSpace(part.Text); trimmed != "" && firstText == "" {
				firstText = trimmed
			}
		}
	}

	return generatedImage{}, errors.New("provider did not return an image payload")
}

func (s *Store) persistGeneratedImage(generated generatedImage) (StoredImage, error) {
	outputDir, err := s.OutputDir()
	if err != nil {
		return StoredImage{}, err
	}

	data, err := base64.StdEncoding.DecodeString(generated.base64)
	if err != nil {
		return StoredImage{}, fmt.Errorf("failed to decode generated image: %w", err)
	}

	baseName := fmt.Sprintf("image_%d.%s", time.Now().UnixMilli(), utils.ExtensionForMime(generated.mimeType))
	uniqueName, err := ensureUniqueFileName(outputDir, baseName)
	if err != nil {
		return StoredImage{}, err
	}
	targetPath := filepath.Join(outputDir, uniqueName)

	if err := os.WriteFile(targetPath, data, 0o644); err != nil {
		return StoredImage{}, fmt.Errorf("unable to persist generated image: %w", err)
	}

	return buildStoredImage(targetPath, int64(len(data)), generated.mimeType)
}

// appendGenerationLog adds entry to log.json in the output directory,
// trimming the file to the most recent entries.
func (s *Store) appendGenerationLog(entry GenerationLogEntry) error {
	dir, err := s.OutputDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, generationLogFile)

	var entries []GenerationLogEntry
	if contents, err := os.ReadFile(path); err == nil {
		// A corrupt log is discarded rather than blocking generation.
		_ = json.Unmarshal(contents, &entries)
	}

	entries = append(entries, entry)
	if len(entries) > maxLogEntries {
		entries = entries[len(entries)-maxLogEntries:]
	}

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialise generation logs: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write generation log: %w", err)
	}
	return nil
}

// ListGenerationLogs returns the rolling generation history, oldest first.
// Malformed content is run through jsonrepair before failing, same as the
// prompt templates file.
func (s *Store) ListGenerationLogs() ([]GenerationLogEntry, error) {
	dir, err := s.OutputDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, generationLogFile)

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read generation log: %w", err)
	}

	var entries []GenerationLogEntry
	if err := json.Unmarshal(contents, &entries); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(contents))
		if repairErr != nil {
			return nil, fmt.Errorf("unable to parse generation log: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &entries); err != nil {
			return nil, fmt.Errorf("unable to parse generation log: %w", err)
		}
	}
	return entries, nil
}
