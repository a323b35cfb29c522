package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the Zotero library",
	Long: `Performs a full-text search across all items in the library,
including note content and indexed attachment text. Results are
grouped by item type.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if libraryService == nil {
		return serviceError()
	}

	opts := domain.SearchOptions{
		Limit: searchLimit,
	}

	results, err := libraryService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results *domain.SearchResults) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results *domain.SearchResults) error {
	cmd.Println(results.Message)
	if results.Count == 0 {
		return nil
	}
	cmd.Println()

	// Stable output order across runs.
	types := make([]string, 0, len(results.ByType))
	for itemType := range results.ByType {
		types = append(types, itemType)
	}
	sort.Strings(types)

	for _, itemType := range types {
		cmd.Printf("[%s]\n", itemType)
		for _, item := range results.ByType[itemType] {
			title := item.Title
			if title == "" {
				title = "(untitled)"
			}
			cmd.Printf("  %s  %s\n", item.Key, title)
			if item.ParentTitle != "" {
				cmd.Printf("      Parent: %s\n", item.ParentTitle)
			}
			for _, name := range item.Collections {
				cmd.Printf("      %s\n", name)
			}
		}
		cmd.Println()
	}

	return nil
}
