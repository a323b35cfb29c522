package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/citelib/zotero-mcp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage zotmcp configuration",
	Long: `View and edit the configuration file.

Keys use dotted paths:
  zotero.library_id    numeric user or group ID
  zotero.library_type  "user" or "group"
  zotero.api_key       web API key
  zotero.local         use the Zotero 7 local API (true/false)
  storage.data_dir     content cache directory

Environment variables override file values.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	resolved := config.Load(configStore)

	cmd.Printf("Config file: %s\n", configStore.Path())
	cmd.Println()
	cmd.Printf("Library ID: %s\n", orUnset(resolved.LibraryID))
	cmd.Printf("Library type: %s\n", resolved.LibraryType)
	if resolved.Local {
		cmd.Println("Mode: local (Zotero 7 API, no key sent)")
	} else {
		cmd.Println("Mode: web")
		if resolved.APIKey != "" {
			cmd.Printf("API key: %s\n", maskAPIKey(resolved.APIKey))
		} else {
			cmd.Println("API key: (not set)")
		}
	}
	if resolved.DataDir != "" {
		cmd.Printf("Data dir: %s\n", resolved.DataDir)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	var value any = raw
	if key == config.KeyLocal {
		local, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, raw)
		}
		value = local
	}

	if err := configStore.Set(key, value); err != nil {
		return err
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
