// Package zotero implements driven.LibraryClient against the Zotero
// Web API v3 and the Zotero 7 local API.
//
// Both APIs share the same wire format. The local API listens on
// http://localhost:23119/api, needs no key, and only serves the user
// library. The web API lives at https://api.zotero.org and requires a
// Zotero-API-Key header.
//
// The client throttles proactively and honours the API's Backoff and
// Retry-After headers, retrying transient failures a bounded number of
// times before surfacing a typed error.
package zotero
