// Package logger writes diagnostics to stderr, keeping stdout free for
// the MCP stdio transport. Warnings always print; debug and info lines
// only appear once verbose mode is switched on.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	verbose bool
	out     io.Writer = os.Stderr
)

// SetVerbose toggles debug and info output.
func SetVerbose(v bool) {
	mu.Lock()
	verbose = v
	mu.Unlock()
}

// SetOutput redirects log output. Tests use this to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

// Debug prints a debug line in verbose mode.
func Debug(format string, args ...any) {
	write(true, "debug", format, args)
}

// Info prints an informational line in verbose mode.
func Info(format string, args ...any) {
	write(true, "info", format, args)
}

// Warn prints a warning regardless of verbose mode. Misconfiguration
// should be visible even on a quiet run.
func Warn(format string, args ...any) {
	write(false, "warn", format, args)
}

func write(gated bool, level, format string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(out, level+": "+format+"\n", args...)
}
