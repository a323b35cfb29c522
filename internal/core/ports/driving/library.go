package driving

import (
	"context"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

// LibraryService provides search and retrieval over a Zotero library.
type LibraryService interface {
	// Search finds items matching a free-text query and returns their
	// summaries grouped by item type.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResults, error)

	// Retrieve fetches the readable content of the given item keys.
	Retrieve(ctx context.Context, keys []string) ([]domain.ItemContent, error)
}
