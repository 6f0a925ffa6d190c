// Package commands provides the imagestudio CLI commands.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/promptlab/llmbridge/internal/config"
	"github.com/promptlab/llmbridge/providers/observability"
	"github.com/promptlab/llmbridge/studio"
)

// Global flags
var (
	configPath string
	libraryDir string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "imagestudio",
	Short: "imagestudio - image generation workspace over LLM providers",
	Long: `imagestudio manages a local image workspace: upload reference images,
maintain prompt templates, generate images through Gemini, and talk to
OpenAI, Anthropic or Gemini chat and embedding endpoints.

Credentials come from the environment (OPENAI_API_KEY, ANTHROPIC_API_KEY,
GEMINI_API_KEY), a .env file, or the TOML config file.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "imagestudio.toml", "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&libraryDir, "library", "", "Workspace directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(outputsCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(openCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig assembles the effective configuration for a command run. A .env
// file in the working directory is applied first so the config loader sees
// its variables.
func loadConfig() (config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if libraryDir != "" {
		cfg.LibraryDir = libraryDir
	}
	return cfg, nil
}

func openStore() (*studio.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return studio.NewStore(cfg.LibraryDir), nil
}

// commandContext returns the context for provider calls, with an observer
// attached at the requested verbosity.
func commandContext(cmd *cobra.Command) context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return observability.WithObserver(cmd.Context(), observability.NewSlogObserver(logger))
}
