package driven

import (
	"context"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

// ContentCache stores extracted attachment content keyed by item key.
// Entries are version-pinned: a lookup with a newer item version misses
// so that edited attachments are re-extracted.
type ContentCache interface {
	// Get returns the cached content for an item at the given version.
	// Returns (nil, nil) on a cache miss.
	Get(ctx context.Context, key string, version int) (*domain.CachedContent, error)

	// Put stores extracted content, replacing any previous entry for the key.
	Put(ctx context.Context, content *domain.CachedContent) error

	// Close releases the underlying storage.
	Close() error
}
