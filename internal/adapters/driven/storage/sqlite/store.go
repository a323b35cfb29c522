// Package sqlite provides a SQLite-backed content cache for extracted
// attachment text, so repeated retrievals skip the download and the
// pdftotext run.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/citelib/zotero-mcp/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/citelib/zotero-mcp/internal/core/domain"
	"github.com/citelib/zotero-mcp/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ContentCache = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.ContentCache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a content cache at the specified data directory.
// If dataDir is empty, defaults to ~/.zotmcp/data/cache.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".zotmcp", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cache.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached content for an item at the given version.
// A version mismatch is a miss: the attachment changed since extraction.
func (s *Store) Get(ctx context.Context, key string, version int) (*domain.CachedContent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT key, version, title, content_type, content, fetched_at
		FROM item_content
		WHERE key = ? AND version = ?
	`, key, version)

	var entry domain.CachedContent
	var fetchedAt time.Time
	err := row.Scan(&entry.Key, &entry.Version, &entry.Title, &entry.ContentType, &entry.Content, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}

	entry.FetchedAt = fetchedAt
	return &entry, nil
}

// Put stores extracted content, replacing any previous entry for the key.
func (s *Store) Put(ctx context.Context, content *domain.CachedContent) error {
	if content == nil || content.Key == "" {
		return domain.ErrInvalidInput
	}

	fetchedAt := content.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO item_content (key, version, title, content_type, content, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			title = excluded.title,
			content_type = excluded.content_type,
			content = excluded.content,
			fetched_at = excluded.fetched_at
	`, content.Key, content.Version, content.Title, content.ContentType, content.Content, fetchedAt)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}

	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
