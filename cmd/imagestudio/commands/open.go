package commands

import (
	"github.com/spf13/cobra"

	"github.com/promptlab/llmbridge/studio"
)

var openCmd = &cobra.Command{
	Use:   "open [input|output]",
	Short: "Open a library directory in the file manager",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		dir, err := store.OutputDir()
		if len(args) == 1 && args[0] == "input" {
			dir, err = store.InputDir()
		}
		if err != nil {
			return err
		}

		return studio.OpenDir(dir)
	},
}
