package cli

import (
	"context"
	"errors"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

// mockLibraryService returns canned results for command tests.
type mockLibraryService struct {
	searchQuery string
	searchLimit int
}

func (m *mockLibraryService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) (*domain.SearchResults, error) {
	m.searchQuery = query
	m.searchLimit = opts.Limit
	return &domain.SearchResults{
		ByType: map[string][]domain.ItemSummary{
			"note": {
				{
					Key:         "NOTE0001",
					Type:        "note",
					Title:       "Reading Notes",
					ParentTitle: "Deep Learning",
					Collections: []string{"Collection depth=0: Machine Learning"},
				},
			},
			"journalArticle": {
				{Key: "ARTI0001", Type: "journalArticle", Title: "Deep Learning"},
			},
		},
		Count:   2,
		Message: "Search results: 2 item(s) found",
	}, nil
}

func (m *mockLibraryService) Retrieve(_ context.Context, keys []string) ([]domain.ItemContent, error) {
	contents := make([]domain.ItemContent, 0, len(keys))
	for _, key := range keys {
		contents = append(contents, domain.ItemContent{
			Key:         key,
			Title:       "Reading Notes",
			Content:     "Plain text content.",
			ContentType: "note",
		})
	}
	return contents, nil
}

// mockLibraryServiceError fails every call.
type mockLibraryServiceError struct{}

func (m *mockLibraryServiceError) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) (*domain.SearchResults, error) {
	return nil, errors.New("mock search error")
}

func (m *mockLibraryServiceError) Retrieve(_ context.Context, _ []string) ([]domain.ItemContent, error) {
	return nil, errors.New("mock retrieve error")
}

// mockConfigStore is an in-memory driven.ConfigStore.
type mockConfigStore struct {
	values map[string]any
	saves  int
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: map[string]any{}}
}

func (m *mockConfigStore) GetString(key string) string {
	str, _ := m.values[key].(string)
	return str
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error {
	m.saves++
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/home/test/.zotmcp/config.toml" }

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices() func() {
	oldService := libraryService
	libraryService = &mockLibraryService{}
	return func() {
		libraryService = oldService
	}
}
