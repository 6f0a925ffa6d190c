package commands

import (
	"github.com/spf13/cobra"
)

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "Manage the generated image library",
}

var outputsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated images, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		images, err := store.ListOutputImages()
		if err != nil {
			return err
		}
		printImages(images)
		return nil
	},
}

var outputsDeleteCmd = &cobra.Command{
	Use:   "delete <name>...",
	Short: "Delete generated images by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return store.DeleteOutputImages(args)
	},
}

func init() {
	outputsCmd.AddCommand(outputsListCmd)
	outputsCmd.AddCommand(outputsDeleteCmd)
}
