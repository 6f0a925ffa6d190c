package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/studio"
)

var (
	generateModel   string
	generateSystem  string
	generateStyle   string
	generateQuality string
	generateSize    string
	generateUser    string
	generateRefs    []string
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate an image from a prompt",
	Long: `Generate an image through Gemini and store it in the output library.

Reference images are read from the input library by file name:

  imagestudio generate "a fox in mezzotint style" --ref fox.png --ref style.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateModel, "model", "m", "", "Model (default "+studio.DefaultImageModel+")")
	generateCmd.Flags().StringVarP(&generateSystem, "system", "s", "", "System prompt")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "Preferred style hint")
	generateCmd.Flags().StringVar(&generateQuality, "quality", "", "Desired quality hint")
	generateCmd.Flags().StringVar(&generateSize, "size", "", "Target dimensions or aspect ratio")
	generateCmd.Flags().StringVar(&generateUser, "user", "", "Requesting user tag")
	generateCmd.Flags().StringArrayVar(&generateRefs, "ref", nil, "Input-library image to attach as reference (repeatable)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := studio.NewStore(cfg.LibraryDir)
	if cfg.Gemini.Endpoint != "" {
		store = store.WithGeminiEndpoint(cfg.Gemini.Endpoint)
	}

	references, err := loadReferences(store, generateRefs)
	if err != nil {
		return err
	}

	result, err := store.Generate(commandContext(cmd), studio.GenerateRequest{
		APIKey:          cfg.Gemini.APIKey,
		Model:           generateModel,
		SystemPrompt:    generateSystem,
		ImagePrompt:     strings.Join(args, " "),
		ReferenceImages: references,
		Size:            generateSize,
		Quality:         generateQuality,
		Style:           generateStyle,
		User:            generateUser,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s (%s, %d bytes)\n", result.Image.Name, result.Image.MimeType, result.Image.Size)
	if result.RevisedPrompt != "" {
		fmt.Println("Revised prompt:", result.RevisedPrompt)
	}
	return nil
}

// loadReferences reads the named input-library files and converts them into
// generation reference payloads.
func loadReferences(store *studio.Store, names []string) ([]studio.ReferenceImage, error) {
	if len(names) == 0 {
		return nil, nil
	}

	inputDir, err := store.InputDir()
	if err != nil {
		return nil, err
	}

	references := make([]studio.ReferenceImage, 0, len(names))
	for _, name := range names {
		path := filepath.Join(inputDir, filepath.Base(name))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read reference image %q: %w", name, err)
		}

		references = append(references, studio.ReferenceImage{
			MimeType:   utils.DetectMime(path, studio.DefaultImageMime),
			DataBase64: utils.EncodeToBase64(data),
			Slot:       strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)),
			FileName:   filepath.Base(name),
		})
	}
	return references, nil
}
