// Package domain contains the core business entities for the Zotero
// MCP server. These types mirror the shapes returned by the Zotero Web
// API (and the Zotero 7 local API, which shares the same wire format)
// and carry no dependencies on adapters or transports.
package domain
