package main

import (
	"os"

	"github.com/citelib/zotero-mcp/internal/adapters/driving/cli"
)

func main() {
	// cobra already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
