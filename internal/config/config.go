// Package config resolves the Zotero library settings from the
// environment and the TOML config file. Environment variables win over
// file values, and a .env file in the working directory is honoured
// without overriding variables already set.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/citelib/zotero-mcp/internal/core/ports/driven"
	"github.com/citelib/zotero-mcp/internal/logger"
)

// Environment variable names.
const (
	EnvLibraryID   = "ZOTERO_LIBRARY_ID"
	EnvLibraryType = "ZOTERO_LIBRARY_TYPE"
	EnvAPIKey      = "ZOTERO_API_KEY"
	EnvLocal       = "ZOTERO_LOCAL"
)

// Config file keys (flattened TOML dot notation).
const (
	KeyLibraryID   = "zotero.library_id"
	KeyLibraryType = "zotero.library_type"
	KeyAPIKey      = "zotero.api_key"
	KeyLocal       = "zotero.local"
	KeyDataDir     = "storage.data_dir"
)

// Settings holds the resolved library configuration.
type Settings struct {
	// LibraryID is the numeric Zotero user or group ID.
	LibraryID string

	// LibraryType is "user" or "group". Defaults to "user".
	LibraryType string

	// APIKey authenticates against the web API. Unused in local mode.
	APIKey string

	// Local selects the Zotero 7 local API.
	Local bool

	// DataDir is where the content cache lives. Empty means the default.
	DataDir string
}

// LoadDotenv loads a .env file from the working directory, ignoring a
// missing file. Existing environment variables are never overridden.
func LoadDotenv() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("config: loading .env: %v", err)
		}
		return
	}
	logger.Debug("config: loaded .env")
}

// Load resolves settings from the config store with environment overrides.
// The store may be nil, in which case only the environment is consulted.
func Load(store driven.ConfigStore) *Settings {
	settings := &Settings{LibraryType: "user"}

	if store != nil {
		if v := store.GetString(KeyLibraryID); v != "" {
			settings.LibraryID = v
		}
		if v := store.GetString(KeyLibraryType); v != "" {
			settings.LibraryType = v
		}
		if v := store.GetString(KeyAPIKey); v != "" {
			settings.APIKey = v
		}
		settings.Local = store.GetBool(KeyLocal)
		settings.DataDir = store.GetString(KeyDataDir)
	}

	if v := os.Getenv(EnvLibraryID); v != "" {
		settings.LibraryID = v
	}
	if v := os.Getenv(EnvLibraryType); v != "" {
		settings.LibraryType = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		settings.APIKey = v
	}
	if v := os.Getenv(EnvLocal); v != "" {
		if local, err := strconv.ParseBool(v); err == nil {
			settings.Local = local
		}
	}

	return settings
}

// DefaultDataDir returns the default cache directory under the user's home.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zotmcp", "data")
}
