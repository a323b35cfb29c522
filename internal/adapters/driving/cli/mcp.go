package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citelib/zotero-mcp/internal/adapters/driving/mcp"
	"github.com/citelib/zotero-mcp/internal/config"
	"github.com/citelib/zotero-mcp/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  zotmcp mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  zotmcp mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "zotero": {
        "command": "/path/to/zotmcp",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if libraryService == nil {
		return serviceError()
	}

	ports := &mcp.Ports{
		Library: libraryService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	// Pick up config edits while the server runs. Library coordinates
	// need a restart, but the reload keeps the next start honest.
	if configStore != nil {
		go watchConfig(cmd)
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

func watchConfig(cmd *cobra.Command) {
	err := config.Watch(cmd.Context(), configStore.Path(), func() {
		if err := configStore.Load(); err != nil {
			logger.Warn("config reload failed: %v", err)
			return
		}
		settings = config.Load(configStore)
		logger.Info("configuration reloaded; library changes apply on restart")
	})
	if err != nil {
		logger.Debug("config watcher stopped: %v", err)
	}
}
