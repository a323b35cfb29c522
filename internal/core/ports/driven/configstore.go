package driven

// ConfigStore persists application configuration addressed by dotted
// keys, e.g. "zotero.library_id".
type ConfigStore interface {
	// GetString returns the string at key, or "" when the key is absent
	// or holds another type.
	GetString(key string) string

	// GetBool returns the bool at key, or false when the key is absent
	// or holds another type.
	GetBool(key string) bool

	// Set stores a value under key in memory. Save persists it.
	Set(key string, value any) error

	// Save writes the configuration to storage.
	Save() error

	// Load re-reads the configuration from storage.
	Load() error

	// Path returns the location of the backing storage.
	Path() string
}
