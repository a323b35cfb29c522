// Package cli wires the cobra command tree for the zotmcp binary.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	configfile "github.com/citelib/zotero-mcp/internal/adapters/driven/config/file"
	"github.com/citelib/zotero-mcp/internal/adapters/driven/storage/sqlite"
	"github.com/citelib/zotero-mcp/internal/config"
	"github.com/citelib/zotero-mcp/internal/core/ports/driven"
	"github.com/citelib/zotero-mcp/internal/core/ports/driving"
	"github.com/citelib/zotero-mcp/internal/core/services"
	"github.com/citelib/zotero-mcp/internal/logger"
	"github.com/citelib/zotero-mcp/internal/parsers"
	"github.com/citelib/zotero-mcp/internal/zotero"
)

var version = "0.1.0"

var errNotConfigured = errors.New("library service not configured")

// Services shared by the commands. Populated by initServices before the
// command runs; tests swap these for mocks.
var (
	configStore    driven.ConfigStore
	settings       *config.Settings
	libraryService driving.LibraryService
	contentCache   driven.ContentCache

	// initErr records why service wiring failed so commands can surface
	// the real cause instead of a generic "not configured".
	initErr error
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "zotmcp",
	Short: "MCP server for your Zotero library",
	Long: `zotmcp exposes a Zotero library to AI assistants over the
Model Context Protocol. It searches notes, attachments, and regular
items, and retrieves their content as plain text.

Configuration comes from ~/.zotmcp/config.toml, a .env file in the
working directory, or environment variables (ZOTERO_LIBRARY_ID,
ZOTERO_LIBRARY_TYPE, ZOTERO_API_KEY, ZOTERO_LOCAL).`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the services and runs the command tree.
func Execute() error {
	initServices()
	return rootCmd.Execute()
}

// initServices builds the service graph from configuration. Failures
// are recorded rather than fatal so that commands like version and
// help still work without a configured library.
func initServices() {
	if libraryService != nil {
		return
	}

	config.LoadDotenv()

	store, err := configfile.NewConfigStore("")
	if err != nil {
		logger.Warn("config store unavailable: %v", err)
	} else {
		configStore = store
	}

	settings = config.Load(configStore)

	client, err := zotero.NewClient(zotero.Config{
		LibraryID:   settings.LibraryID,
		LibraryType: settings.LibraryType,
		APIKey:      settings.APIKey,
		Local:       settings.Local,
	})
	if err != nil {
		initErr = err
		return
	}

	cache, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		// The cache is an optimisation. Run without it.
		logger.Warn("content cache unavailable: %v", err)
	} else {
		contentCache = cache
	}

	var extractor driven.ContentExtractor
	if err := parsers.CheckAvailable(); err != nil {
		logger.Warn("%v", err)
		logger.Warn("PDF attachments will return metadata only.\n%s", parsers.InstallInstructions())
	} else {
		extractor = parsers.NewPDFExtractor()
	}

	libraryService = services.NewLibraryService(client, contentCache, extractor)
}

// serviceError explains why the library service is missing.
func serviceError() error {
	if initErr != nil {
		return initErr
	}
	return errNotConfigured
}
