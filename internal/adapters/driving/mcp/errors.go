// Package mcp provides an MCP (Model Context Protocol) server adapter
// exposing a Zotero library to AI assistants. It registers two tools,
// one for searching the library and one for retrieving item content.
package mcp

import "errors"

// ErrMissingLibraryService is returned when the library service is not provided.
var ErrMissingLibraryService = errors.New("mcp: library service is required")
