package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/citelib/zotero-mcp/internal/core/domain"
	"github.com/citelib/zotero-mcp/internal/core/ports/driven"
	"github.com/citelib/zotero-mcp/internal/core/ports/driving"
	"github.com/citelib/zotero-mcp/internal/logger"
	"github.com/citelib/zotero-mcp/internal/parsers"
)

const (
	// DefaultSearchLimit is used when the caller passes no limit.
	DefaultSearchLimit = 10

	// MaxSearchLimit caps the number of items a single search returns.
	MaxSearchLimit = 100

	// maxCollectionDepth guards ancestry resolution against cycles.
	maxCollectionDepth = 100
)

// Content type labels for retrieved items.
const (
	ContentTypeNote     = "note"
	ContentTypePDF      = "pdf"
	ContentTypeMetadata = "metadata"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService implements search and retrieval over a Zotero library.
type LibraryService struct {
	client    driven.LibraryClient
	cache     driven.ContentCache
	extractor driven.ContentExtractor
}

// NewLibraryService creates a library service.
// cache and extractor are optional: without an extractor, PDF
// attachments degrade to metadata; without a cache, every retrieval
// re-extracts.
func NewLibraryService(
	client driven.LibraryClient,
	cache driven.ContentCache,
	extractor driven.ContentExtractor,
) *LibraryService {
	return &LibraryService{
		client:    client,
		cache:     cache,
		extractor: extractor,
	}
}

// Search finds items matching the query and summarises each hit with
// its title, parent title, and collection ancestry.
func (s *LibraryService) Search(
	ctx context.Context,
	query string,
	opts domain.SearchOptions,
) (*domain.SearchResults, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	items, err := s.client.SearchItems(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := &domain.SearchResults{
		ByType: make(map[string][]domain.ItemSummary),
		Count:  len(items),
	}
	if len(items) == 0 {
		results.Message = "No items found!"
		return results, nil
	}
	results.Message = fmt.Sprintf("Search results: %d item(s) found", len(items))

	// Collections repeat across hits; resolve each key once per search.
	collections := make(map[string]*domain.Collection)

	for i := range items {
		summary, err := s.summarise(ctx, &items[i], collections)
		if err != nil {
			return nil, err
		}
		results.ByType[summary.Type] = append(results.ByType[summary.Type], summary)
	}

	return results, nil
}

// summarise builds the search summary for a single item.
func (s *LibraryService) summarise(
	ctx context.Context,
	item *domain.Item,
	collections map[string]*domain.Collection,
) (domain.ItemSummary, error) {
	summary := domain.ItemSummary{
		Key:  item.Key,
		Type: item.Data.ItemType,
	}

	if item.IsNote() {
		summary.Title = parsers.NoteTitle(item.Data.Note)
	} else {
		summary.Title = item.Data.Title
	}

	// Child items inherit collection membership from their parent.
	collectionKeys := item.Data.Collections
	if item.Data.ParentItem != "" {
		parent, err := s.client.Item(ctx, item.Data.ParentItem)
		if err != nil {
			return summary, fmt.Errorf("resolving parent of %s: %w", item.Key, err)
		}
		summary.ParentTitle = parent.Data.Title
		if len(collectionKeys) == 0 {
			collectionKeys = parent.Data.Collections
		}
	}

	for _, key := range collectionKeys {
		ancestry, err := s.collectionAncestry(ctx, key, collections)
		if err != nil {
			return summary, fmt.Errorf("resolving collections of %s: %w", item.Key, err)
		}
		summary.Collections = append(summary.Collections, ancestry...)
	}

	return summary, nil
}

// collectionAncestry resolves a collection's chain of parents and
// returns labels ordered root-first, the root carrying depth 0.
func (s *LibraryService) collectionAncestry(
	ctx context.Context,
	key string,
	memo map[string]*domain.Collection,
) ([]string, error) {
	// Walk leaf to root.
	var chain []*domain.Collection
	for key != "" {
		if len(chain) >= maxCollectionDepth {
			return nil, domain.ErrCollectionDepth
		}

		collection, ok := memo[key]
		if !ok {
			var err error
			collection, err = s.client.Collection(ctx, key)
			if err != nil {
				return nil, err
			}
			memo[key] = collection
		}

		chain = append(chain, collection)
		key = string(collection.Data.ParentCollection)
	}

	// Label root-first with increasing depth.
	labels := make([]string, len(chain))
	for i, collection := range chain {
		depth := len(chain) - 1 - i
		labels[depth] = fmt.Sprintf("Collection depth=%d: %s", depth, collection.Data.Name)
	}

	return labels, nil
}

// Retrieve fetches the readable content for each item key.
func (s *LibraryService) Retrieve(ctx context.Context, keys []string) ([]domain.ItemContent, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no item keys given", domain.ErrInvalidInput)
	}

	contents := make([]domain.ItemContent, 0, len(keys))
	for _, key := range keys {
		item, err := s.client.Item(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("retrieving %s: %w", key, err)
		}

		content, err := s.itemContent(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("retrieving %s: %w", key, err)
		}
		contents = append(contents, content)
	}

	return contents, nil
}

// itemContent extracts content according to the item's type.
func (s *LibraryService) itemContent(ctx context.Context, item *domain.Item) (domain.ItemContent, error) {
	switch {
	case item.IsNote():
		return domain.ItemContent{
			Key:         item.Key,
			Title:       parsers.NoteTitle(item.Data.Note),
			Content:     parsers.NoteText(item.Data.Note),
			ContentType: ContentTypeNote,
		}, nil

	case item.IsPDFAttachment() && s.extractor != nil:
		return s.pdfContent(ctx, item)

	default:
		// Bibliographic items, and attachments we cannot extract.
		content := parsers.ItemMetadata(item.Data)
		if item.Data.ItemType != domain.ItemTypeAttachment && item.Data.ParentItem == "" {
			if notes := s.childNotes(ctx, item.Key); notes != "" {
				content += "\n\n" + notes
			}
		}
		return domain.ItemContent{
			Key:         item.Key,
			Title:       item.Data.Title,
			Content:     content,
			ContentType: ContentTypeMetadata,
		}, nil
	}
}

// childNotes collects the text of an item's child notes so a
// bibliographic record carries its annotations along. A listing
// failure degrades to plain metadata.
func (s *LibraryService) childNotes(ctx context.Context, key string) string {
	children, err := s.client.Children(ctx, key)
	if err != nil {
		logger.Warn("listing children of %s: %v", key, err)
		return ""
	}

	var notes []string
	for i := range children {
		if children[i].IsNote() {
			notes = append(notes, parsers.NoteText(children[i].Data.Note))
		}
	}
	if len(notes) == 0 {
		return ""
	}
	return "Notes:\n" + strings.Join(notes, "\n\n")
}

// pdfContent returns extracted PDF text, consulting the cache first.
func (s *LibraryService) pdfContent(ctx context.Context, item *domain.Item) (domain.ItemContent, error) {
	title := item.Data.Title
	if title == "" {
		title = item.Data.Filename
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, item.Key, item.Version)
		if err != nil {
			logger.Warn("content cache lookup failed for %s: %v", item.Key, err)
		} else if cached != nil {
			logger.Debug("content cache hit for %s (version %d)", item.Key, item.Version)
			return domain.ItemContent{
				Key:         item.Key,
				Title:       cached.Title,
				Content:     cached.Content,
				ContentType: cached.ContentType,
			}, nil
		}
	}

	data, err := s.client.File(ctx, item.Key)
	if err != nil {
		return domain.ItemContent{}, err
	}

	text, err := s.extractor.Extract(ctx, data)
	if err != nil {
		return domain.ItemContent{}, fmt.Errorf("extracting PDF text: %w", err)
	}

	if s.cache != nil {
		entry := &domain.CachedContent{
			Key:         item.Key,
			Version:     item.Version,
			Title:       title,
			ContentType: ContentTypePDF,
			Content:     text,
			FetchedAt:   time.Now().UTC(),
		}
		if err := s.cache.Put(ctx, entry); err != nil {
			logger.Warn("content cache write failed for %s: %v", item.Key, err)
		}
	}

	return domain.ItemContent{
		Key:         item.Key,
		Title:       title,
		Content:     text,
		ContentType: ContentTypePDF,
	}, nil
}
