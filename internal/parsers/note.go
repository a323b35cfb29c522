package parsers

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for note HTML parsing.
var (
	h1Tag             = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	blockElements     = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	openBlockElements = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	brTags            = regexp.MustCompile(`(?i)<br\s*/?>`)
	hrTags            = regexp.MustCompile(`(?i)<hr\s*/?>`)
	allTags           = regexp.MustCompile(`<[^>]+>`)
	multiSpaces       = regexp.MustCompile(`[ \t]+`)
	multiNewlines     = regexp.MustCompile(`\n{3,}`)
)

// NoteTitle extracts a title from a Zotero note's HTML body.
// Zotero's editor puts the title in the first <h1>; untitled notes fall
// back to the first line of text.
func NoteTitle(noteHTML string) string {
	matches := h1Tag.FindStringSubmatch(noteHTML)
	if len(matches) > 1 {
		title := strings.TrimSpace(html.UnescapeString(allTags.ReplaceAllString(matches[1], "")))
		if title != "" {
			return title
		}
	}

	// No <h1>: take the first non-empty line of the stripped text.
	text := NoteText(noteHTML)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// NoteText converts a note's HTML body to readable plain text.
func NoteText(noteHTML string) string {
	content := noteHTML

	// Add newlines around block elements for readability.
	content = openBlockElements.ReplaceAllString(content, "\n")
	content = blockElements.ReplaceAllString(content, "\n")

	// Convert <br> and <hr> to newlines.
	content = brTags.ReplaceAllString(content, "\n")
	content = hrTags.ReplaceAllString(content, "\n")

	// Strip all remaining HTML tags.
	content = allTags.ReplaceAllString(content, "")

	// Decode HTML entities.
	content = html.UnescapeString(content)

	// Collapse multiple spaces (but preserve newlines).
	content = multiSpaces.ReplaceAllString(content, " ")

	// Collapse multiple newlines.
	content = multiNewlines.ReplaceAllString(content, "\n\n")

	// Trim each line and remove empty lines.
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}
