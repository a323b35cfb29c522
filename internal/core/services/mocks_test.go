package services

import (
	"context"
	"fmt"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

// mockLibraryClient is a mock implementation of driven.LibraryClient.
type mockLibraryClient struct {
	searchResults  []domain.Item
	searchLimit    int // records the limit the service asked for
	items          map[string]*domain.Item
	children       map[string][]domain.Item
	childrenErr    error
	collections    map[string]*domain.Collection
	files          map[string][]byte
	fileCalls      int
	childrenCalls  int
	collectionGets int
	err            error
}

func (m *mockLibraryClient) SearchItems(_ context.Context, _ string, limit int) ([]domain.Item, error) {
	m.searchLimit = limit
	return m.searchResults, m.err
}

func (m *mockLibraryClient) Item(_ context.Context, key string) (*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[key]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", key, domain.ErrNotFound)
	}
	return item, nil
}

func (m *mockLibraryClient) Children(_ context.Context, key string) ([]domain.Item, error) {
	m.childrenCalls++
	if m.childrenErr != nil {
		return nil, m.childrenErr
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.children[key], nil
}

func (m *mockLibraryClient) Collection(_ context.Context, key string) (*domain.Collection, error) {
	m.collectionGets++
	if m.err != nil {
		return nil, m.err
	}
	collection, ok := m.collections[key]
	if !ok {
		return nil, fmt.Errorf("collection %s: %w", key, domain.ErrNotFound)
	}
	return collection, nil
}

func (m *mockLibraryClient) File(_ context.Context, key string) ([]byte, error) {
	m.fileCalls++
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[key]
	if !ok {
		return nil, fmt.Errorf("attachment %s: %w", key, domain.ErrNotFound)
	}
	return data, nil
}

// mockContentCache is a mock implementation of driven.ContentCache.
type mockContentCache struct {
	entries map[string]*domain.CachedContent
	puts    int
	err     error
}

func newMockContentCache() *mockContentCache {
	return &mockContentCache{entries: make(map[string]*domain.CachedContent)}
}

func (m *mockContentCache) Get(_ context.Context, key string, version int) (*domain.CachedContent, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[key]
	if !ok || entry.Version != version {
		return nil, nil
	}
	return entry, nil
}

func (m *mockContentCache) Put(_ context.Context, content *domain.CachedContent) error {
	if m.err != nil {
		return m.err
	}
	m.puts++
	m.entries[content.Key] = content
	return nil
}

func (m *mockContentCache) Close() error { return nil }

// mockExtractor is a mock implementation of driven.ContentExtractor.
type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) Extract(_ context.Context, _ []byte) (string, error) {
	return m.text, m.err
}

// Test fixtures shared across tests.

func noteItem(key, parent, noteHTML string, collections ...string) domain.Item {
	return domain.Item{
		Key:     key,
		Version: 1,
		Data: domain.ItemData{
			Key:         key,
			ItemType:    domain.ItemTypeNote,
			Note:        noteHTML,
			ParentItem:  parent,
			Collections: collections,
		},
	}
}

func articleItem(key, title string, collections ...string) domain.Item {
	return domain.Item{
		Key:     key,
		Version: 1,
		Data: domain.ItemData{
			Key:         key,
			ItemType:    "journalArticle",
			Title:       title,
			Collections: collections,
		},
	}
}

func collection(key, name string, parent domain.ParentKey) *domain.Collection {
	return &domain.Collection{
		Key: key,
		Data: domain.CollectionData{
			Key:              key,
			Name:             name,
			ParentCollection: parent,
		},
	}
}
