package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promptlab/llmbridge/internal/utils"
	"github.com/promptlab/llmbridge/studio"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Manage the input image library",
}

var imagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List input images, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		images, err := store.ListInputImages()
		if err != nil {
			return err
		}
		printImages(images)
		return nil
	},
}

var imagesUploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Copy image files into the input library",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		payloads := make([]studio.UploadImage, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("unable to read %q: %w", path, err)
			}
			payloads = append(payloads, studio.UploadImage{
				FileName:   filepath.Base(path),
				MimeType:   utils.DetectMime(path, ""),
				DataBase64: utils.EncodeToBase64(data),
			})
		}

		stored, err := store.UploadImages(payloads)
		if err != nil {
			return err
		}
		for _, image := range stored {
			fmt.Println("Stored", image.Name)
		}
		return nil
	},
}

var imagesDeleteCmd = &cobra.Command{
	Use:   "delete <name>...",
	Short: "Delete input images by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return store.DeleteInputImages(args)
	},
}

func init() {
	imagesCmd.AddCommand(imagesListCmd)
	imagesCmd.AddCommand(imagesUploadCmd)
	imagesCmd.AddCommand(imagesDeleteCmd)
}

func printImages(images []studio.StoredImage) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tMIME\tSIZE")
	for _, image := range images {
		fmt.Fprintf(writer, "%s\t%s\t%d\n", image.Name, image.MimeType, image.Size)
	}
	writer.Flush()
}
