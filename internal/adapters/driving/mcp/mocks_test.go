package mcp

import (
	"context"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

// mockLibraryService is a mock implementation of driving.LibraryService.
type mockLibraryService struct {
	results       *domain.SearchResults
	contents      []domain.ItemContent
	searchQuery   string
	searchLimit   int
	requestedKeys []string
	err           error
}

func (m *mockLibraryService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) (*domain.SearchResults, error) {
	m.searchQuery = query
	m.searchLimit = opts.Limit
	if m.err != nil {
		return nil, m.err
	}
	if m.results == nil {
		return &domain.SearchResults{ByType: map[string][]domain.ItemSummary{}, Message: "No items found!"}, nil
	}
	return m.results, nil
}

func (m *mockLibraryService) Retrieve(_ context.Context, keys []string) ([]domain.ItemContent, error) {
	m.requestedKeys = keys
	if m.err != nil {
		return nil, m.err
	}
	return m.contents, nil
}
