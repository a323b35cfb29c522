package domain

// SearchOptions configures a library search.
type SearchOptions struct {
	// Limit is the maximum number of items to return.
	Limit int
}

// ItemSummary is the metadata returned for a single search hit.
type ItemSummary struct {
	// Key is the Zotero item key. Feed it to Retrieve to get content.
	Key string `json:"itemKey"`

	// Type is the Zotero item type (note, attachment, journalArticle, ...).
	Type string `json:"itemType"`

	// Title is the item title. For notes it is parsed out of the note HTML.
	Title string `json:"itemTitle"`

	// ParentTitle is the title of the parent item, when the item is a
	// child note or attachment.
	ParentTitle string `json:"itemParentTitle,omitempty"`

	// Collections lists the ancestry of each collection holding the
	// item, labelled root-first with depth, e.g.
	// "Collection depth=0: Physics" / "Collection depth=1: Quantum".
	Collections []string `json:"itemCollectionNames,omitempty"`
}

// SearchResults groups search hits by item type, mirroring the shape a
// chat client sees.
type SearchResults struct {
	// ByType maps an item type to the summaries of that type.
	ByType map[string][]ItemSummary `json:"results"`

	// Count is the total number of items found before grouping.
	Count int `json:"count"`

	// Message is a human-readable summary line.
	Message string `json:"message"`
}
