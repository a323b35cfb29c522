// Package parsers converts Zotero item payloads into readable text:
// note HTML into titles and plain text, PDF attachments into extracted
// text, and bibliographic records into a formatted metadata block.
package parsers
