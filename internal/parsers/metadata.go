package parsers

import (
	"fmt"
	"strings"

	"github.com/citelib/zotero-mcp/internal/core/domain"
)

// ItemMetadata renders a bibliographic item's fields as a readable
// block of text. Used for items that have no extractable content of
// their own (books, articles without attachments, ...).
func ItemMetadata(data domain.ItemData) string {
	var b strings.Builder

	writeField(&b, "Title", data.Title)
	writeField(&b, "Type", data.ItemType)

	if len(data.Creators) > 0 {
		names := make([]string, 0, len(data.Creators))
		for _, creator := range data.Creators {
			if name := creator.DisplayName(); name != "" {
				names = append(names, name)
			}
		}
		writeField(&b, "Creators", strings.Join(names, "; "))
	}

	writeField(&b, "Date", data.Date)
	writeField(&b, "URL", data.URL)
	writeField(&b, "Abstract", data.AbstractNote)

	if len(data.Tags) > 0 {
		tags := make([]string, 0, len(data.Tags))
		for _, tag := range data.Tags {
			tags = append(tags, tag.Tag)
		}
		writeField(&b, "Tags", strings.Join(tags, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
