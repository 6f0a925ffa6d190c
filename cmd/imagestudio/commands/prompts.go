package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/studio"
)

var (
	promptsSaveID     string
	promptsSaveSystem string
	promptsSaveUser   string
	promptsShowJSON   bool
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage prompt templates",
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		templates, err := store.ListPromptTemplates()
		if err != nil {
			return err
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tNAME\tCREATED")
		for _, template := range templates {
			created := time.Unix(template.DateCreated, 0).Format(time.DateOnly)
			fmt.Fprintf(writer, "%s\t%s\t%s\n", template.ID, template.Name, created)
		}
		return writer.Flush()
	},
}

var promptsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a template's prompts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		template, err := store.LoadPrompt(args[0])
		if err != nil {
			return err
		}
		if promptsShowJSON {
			fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(template))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "System prompt:")
		fmt.Fprintln(cmd.OutOrStdout(), template.SystemPrompt)
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "User prompt:")
		fmt.Fprintln(cmd.OutOrStdout(), template.UserPrompt)
		return nil
	},
}

var promptsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Create or update a prompt template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		template, err := store.SavePrompt(studio.SavePrompt{
			ID:           promptsSaveID,
			Name:         args[0],
			SystemPrompt: promptsSaveSystem,
			UserPrompt:   promptsSaveUser,
		})
		if err != nil {
			return err
		}
		fmt.Println("Saved template", template.ID)
		return nil
	},
}

var promptsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a prompt template by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return store.RemovePrompt(args[0])
	},
}

func init() {
	promptsShowCmd.Flags().BoolVar(&promptsShowJSON, "json", false, "Print the template as JSON")

	promptsSaveCmd.Flags().StringVar(&promptsSaveID, "id", "", "Existing template id to update")
	promptsSaveCmd.Flags().StringVarP(&promptsSaveSystem, "system", "s", "", "System prompt text")
	promptsSaveCmd.Flags().StringVarP(&promptsSaveUser, "user", "u", "", "User prompt text")

	promptsCmd.AddCommand(promptsListCmd)
	promptsCmd.AddCommand(promptsShowCmd)
	promptsCmd.AddCommand(promptsSaveCmd)
	promptsCmd.AddCommand(promptsRemoveCmd)
}
