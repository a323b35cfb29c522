package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested item or collection does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates the Zotero API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrCollectionDepth indicates collection ancestry resolution
	// exceeded the depth guard, which points at a cycle in the data.
	ErrCollectionDepth = errors.New("collection hierarchy too deep")
)
