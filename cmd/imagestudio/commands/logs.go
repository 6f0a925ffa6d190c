package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the generation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		entries, err := store.ListGenerationLogs()
		if err != nil {
			return err
		}

		for _, entry := range entries {
			when := time.Unix(entry.Timestamp, 0).Format(time.DateTime)
			fmt.Printf("%s  %s\n", when, entry.OutputImage)
			fmt.Printf("    prompt: %s\n", entry.Prompt)
			if entry.SystemPrompt != "" {
				fmt.Printf("    system: %s\n", entry.SystemPrompt)
			}
			if len(entry.ReferenceImages) > 0 {
				fmt.Printf("    refs: %s\n", strings.Join(entry.ReferenceImages, ", "))
			}
		}
		return nil
	},
}
