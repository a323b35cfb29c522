package domain

import "time"

// ItemContent is the readable content of a retrieved item: note text
// for notes, extracted text for PDF attachments, formatted metadata
// otherwise.
type ItemContent struct {
	// Key is the Zotero item key.
	Key string `json:"itemKey"`

	// Title is the item title (parsed from HTML for notes).
	Title string `json:"itemTitle"`

	// Content is the plain-text content.
	Content string `json:"itemContent"`

	// ContentType describes what Content holds: "note", "pdf", or "metadata".
	ContentType string `json:"contentType"`
}

// CachedContent is a content extraction stored by a ContentCache.
// Version pins the entry to the item revision it was extracted from.
type CachedContent struct {
	Key         string
	Version     int
	Title       string
	ContentType string
	Content     string
	FetchedAt   time.Time
}
