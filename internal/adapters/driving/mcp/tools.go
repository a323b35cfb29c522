package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the text query to search for within the Zotero library (keywords, author names, titles)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results map[string][]ItemSummaryOutput `json:"results"`
	Count   int                            `json:"count"`
	Message string                         `json:"message"`
}

// ItemSummaryOutput represents a single search hit.
type ItemSummaryOutput struct {
	ItemKey     string   `json:"item_key"`
	ItemType    string   `json:"item_type"`
	Title       string   `json:"title"`
	ParentTitle string   `json:"parent_title,omitempty"`
	Collections []string `json:"collections,omitempty"`
}

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	ItemKeys []string `json:"item_keys" jsonschema:"the Zotero item keys to fetch content for, as returned by zotero_search_library"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Items []ItemContentOutput `json:"items"`
	Count int                 `json:"count"`
}

// ItemContentOutput is the readable content of one retrieved item.
type ItemContentOutput struct {
	ItemKey     string `json:"item_key"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "zotero_search_library",
		Description: "Search the user's Zotero library for items matching a text query. " +
			"Returns item keys, types, titles, parent item titles, and collection hierarchies, grouped by item type.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "zotero_retrieve_items",
		Description: "Retrieve the full content of Zotero items by key: note text for notes, " +
			"extracted text for PDF attachments, and bibliographic metadata for other item types.",
	}, s.handleRetrieve)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit}
	results, err := s.ports.Library.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make(map[string][]ItemSummaryOutput, len(results.ByType)),
		Count:   results.Count,
		Message: results.Message,
	}

	for itemType, summaries := range results.ByType {
		converted := make([]ItemSummaryOutput, len(summaries))
		for i := range summaries {
			converted[i] = ItemSummaryOutput{
				ItemKey:     summaries[i].Key,
				ItemType:    summaries[i].Type,
				Title:       summaries[i].Title,
				ParentTitle: summaries[i].ParentTitle,
				Collections: summaries[i].Collections,
			}
		}
		output.Results[itemType] = converted
	}

	return nil, output, nil
}

// handleRetrieve handles the retrieve tool invocation.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	contents, err := s.ports.Library.Retrieve(ctx, input.ItemKeys)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Items: make([]ItemContentOutput, len(contents)),
		Count: len(contents),
	}

	for i := range contents {
		output.Items[i] = ItemContentOutput{
			ItemKey:     contents[i].Key,
			Title:       contents[i].Title,
			Content:     contents[i].Content,
			ContentType: contents[i].ContentType,
		}
	}

	return nil, output, nil
}
