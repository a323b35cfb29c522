package driven

import (
	"context"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

// LibraryClient talks to a Zotero library over the Web API or the
// Zotero 7 local API. Implementations live in internal/zotero.
type LibraryClient interface {
	// SearchItems performs a free-text search over the library
	// (title, creators, full text) and returns at most limit items.
	SearchItems(ctx context.Context, query string, limit int) ([]domain.Item, error)

	// Item fetches a single item by key.
	// Returns domain.ErrNotFound if the key does not exist.
	Item(ctx context.Context, key string) (*domain.Item, error)

	// Children fetches the child items (notes, attachments) of an item.
	Children(ctx context.Context, key string) ([]domain.Item, error)

	// Collection fetches a single collection by key.
	Collection(ctx context.Context, key string) (*domain.Collection, error)

	// File downloads the raw bytes of an attachment item.
	File(ctx context.Context, key string) ([]byte, error)
}
