// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LibraryClient: Talks to the Zotero API (web or local)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ContentCache: Caches extracted attachment content
//   - CommandRunner: Runs external extraction tools (pdftotext)
package driven
