package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var retrieveJSON bool

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [item-key...]",
	Short: "Retrieve item content",
	Long: `Fetches the readable content of one or more library items by key.
Notes are converted from HTML to plain text, PDF attachments are run
through pdftotext, and other item types return a metadata summary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().BoolVar(&retrieveJSON, "json", false, "output content as JSON")
	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return serviceError()
	}

	contents, err := libraryService.Retrieve(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("retrieve failed: %w", err)
	}

	if retrieveJSON {
		data, err := json.MarshalIndent(contents, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal content: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for i, item := range contents {
		if i > 0 {
			cmd.Println()
		}
		cmd.Printf("=== %s (%s)\n", item.Key, item.ContentType)
		if item.Title != "" {
			cmd.Printf("Title: %s\n", item.Title)
		}
		cmd.Println()
		cmd.Println(item.Content)
	}

	return nil
}
