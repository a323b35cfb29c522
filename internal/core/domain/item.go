package domain

import (
	"strings"
)

// Item types with dedicated handling.
const (
	ItemTypeNote       = "note"
	ItemTypeAttachment = "attachment"
)

// ContentTypePDF is the MIME type of PDF attachments.
const ContentTypePDF = "application/pdf"

// Item is a single entry in a Zotero library: a bibliographic record,
// a note, or an attachment. The interesting fields live in Data; the
// top-level Key and Version are repeated there by the API.
type Item struct {
	// Key is Zotero's unique identifier for the item (8 characters).
	Key string `json:"key"`

	// Version is the library version at which the item last changed.
	// Zotero bumps it on every edit.
	Version int `json:"version"`

	// Data holds the item fields.
	Data ItemData `json:"data"`
}

// ItemData holds the fields of an item. Zotero returns a different
// field set per item type; absent fields unmarshal to zero values.
type ItemData struct {
	Key      string `json:"key"`
	Version  int    `json:"version"`
	ItemType string `json:"itemType"`

	// Title is empty for notes; their title is embedded in the note HTML.
	Title string `json:"title,omitempty"`

	// Note is the HTML body of a note item.
	Note string `json:"note,omitempty"`

	// ParentItem is the key of the parent item for child notes and
	// attachments. Empty for top-level items.
	ParentItem string `json:"parentItem,omitempty"`

	// Collections lists the keys of the collections holding this item.
	// Child items inherit membership from their parent and have none of
	// their own.
	Collections []string `json:"collections,omitempty"`

	// Attachment fields.
	ContentType string `json:"contentType,omitempty"`
	Filename    string `json:"filename,omitempty"`
	LinkMode    string `json:"linkMode,omitempty"`

	// Bibliographic fields.
	Creators     []Creator `json:"creators,omitempty"`
	AbstractNote string    `json:"abstractNote,omitempty"`
	Date         string    `json:"date,omitempty"`
	URL          string    `json:"url,omitempty"`

	Tags []Tag `json:"tags,omitempty"`
}

// Creator is an author, editor, or other contributor of an item.
type Creator struct {
	CreatorType string `json:"creatorType"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`

	// Name is used instead of FirstName/LastName for single-field
	// creators (institutions, etc).
	Name string `json:"name,omitempty"`
}

// DisplayName returns the creator's name in reading order.
func (c Creator) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Tag is a tag attached to an item.
type Tag struct {
	Tag string `json:"tag"`
}

// IsNote reports whether the item is a note.
func (i *Item) IsNote() bool {
	return i.Data.ItemType == ItemTypeNote
}

// IsPDFAttachment reports whether the item is a PDF attachment.
func (i *Item) IsPDFAttachment() bool {
	return i.Data.ItemType == ItemTypeAttachment && i.Data.ContentType == ContentTypePDF
}
