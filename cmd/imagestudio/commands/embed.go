package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptlab/llmbridge/core/dispatch"
	"github.com/promptlab/llmbridge/providers/ai"
)

var (
	embedProvider string
	embedModel    string
)

var embedCmd = &cobra.Command{
	Use:   "embed <text>...",
	Short: "Compute embedding vectors for one or more texts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEmbed,
}

func init() {
	embedCmd.Flags().StringVarP(&embedProvider, "provider", "p", "", "Provider (openai|gemini), default from config")
	embedCmd.Flags().StringVarP(&embedModel, "model", "m", "", "Model override")
}

func runEmbed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := cfg.Client(embedProvider, ai.CallEmbedding)
	if err != nil {
		return err
	}
	if embedModel != "" {
		client = ai.NewClient(client.Provider(), client.APIKey(), client.Endpoint(), embedModel, ai.CallEmbedding)
	}

	vectors := dispatch.Embedding(client)(commandContext(cmd), args)
	if len(vectors) == 0 {
		return fmt.Errorf("no embeddings produced")
	}

	for i, vector := range vectors {
		preview := vector
		if len(preview) > 8 {
			preview = preview[:8]
		}
		fmt.Printf("%d: dim=%d %v...\n", i, len(vector), preview)
	}
	return nil
}
