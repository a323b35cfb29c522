package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Zotero resources.
const uriScheme = "zotero://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for item content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "items/{itemKey}",
		Name:        "item-content",
		Description: "Readable content of a Zotero library item",
		MIMEType:    "text/plain",
	}, s.handleItemResource)
}

// handleItemResource returns the content of a specific item.
func (s *Server) handleItemResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract itemKey from URI: zotero://items/{itemKey}
	key := extractItemKey(req.Params.URI)
	if key == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	contents, err := s.ports.Library.Retrieve(ctx, []string{key})
	if err != nil {
		return nil, fmt.Errorf("retrieving item: %w", err)
	}
	if len(contents) == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	item := contents[0]
	text := item.Content
	if item.Title != "" {
		text = item.Title + "\n\n" + item.Content
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// extractItemKey extracts the item key from a URI like zotero://items/{itemKey}.
func extractItemKey(uri string) string {
	const prefix = uriScheme + "items/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	key := strings.TrimPrefix(uri, prefix)
	if strings.Contains(key, "/") {
		return ""
	}
	return key
}
