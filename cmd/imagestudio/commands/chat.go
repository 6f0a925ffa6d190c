package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptlab/llmbridge/core/dispatch"
	"github.com/promptlab/llmbridge/providers/ai"
)

var (
	chatProvider string
	chatModel    string
	chatSystem   string
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send a chat message to a provider",
	Long: `Send a single chat message and print the reply.

Examples:
  imagestudio chat "What is a mezzotint?"
  imagestudio chat --provider openai --model gpt-4o "Describe this style"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatProvider, "provider", "p", "", "Provider (openai|anthropic|gemini), default from config")
	chatCmd.Flags().StringVarP(&chatModel, "model", "m", "", "Model override")
	chatCmd.Flags().StringVarP(&chatSystem, "system", "s", "", "System prompt")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := cfg.Client(chatProvider, ai.CallChat)
	if err != nil {
		return err
	}
	if chatModel != "" {
		client = ai.NewClient(client.Provider(), client.APIKey(), client.Endpoint(), chatModel, ai.CallChat)
	}

	var messages []ai.Message
	if chatSystem != "" {
		messages = append(messages, ai.NewMessage("", "system", []ai.Part{ai.Text(chatSystem)}))
	}
	messages = append(messages, ai.NewMessage("", "user", []ai.Part{ai.Text(strings.Join(args, " "))}))

	reply := dispatch.Chat(client)(commandContext(cmd), messages)
	fmt.Println(reply.JoinedText())
	return nil
}
