package parsers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/citelib/zotero-mcp/internal/core/ports/driven"
)

// pdfTool is the external binary used for text extraction.
const pdfTool = "pdftotext"

// ErrPDFToolNotFound indicates the pdftotext binary is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PDFExtractor extracts text from PDF attachment bytes by shelling out
// to pdftotext (poppler).
type PDFExtractor struct {
	runner driven.CommandRunner
}

// NewPDFExtractor creates an extractor using the system pdftotext.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{runner: execRunner{}}
}

// NewPDFExtractorWithRunner creates an extractor with a custom runner.
// Useful for testing without the binary installed.
func NewPDFExtractorWithRunner(runner driven.CommandRunner) *PDFExtractor {
	return &PDFExtractor{runner: runner}
}

// CheckAvailable returns an error if pdftotext is not installed.
func CheckAvailable() error {
	if _, err := exec.LookPath(pdfTool); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns platform hints for installing pdftotext.
func InstallInstructions() string {
	return `PDF extraction requires the pdftotext tool (part of poppler):

  macOS:         brew install poppler
  Debian/Ubuntu: sudo apt install poppler-utils
  Fedora:        sudo dnf install poppler-utils
  Windows:       https://github.com/oschwartz10612/poppler-windows`
}

// Extract converts PDF bytes into plain text.
// The bytes are staged in a temp file because pdftotext reads from disk.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := CheckAvailable(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "zotmcp-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	// -layout keeps column text readable; "-" writes to stdout.
	output, err := e.runner.Run(ctx, pdfTool, "-layout", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("running %s: %w", pdfTool, err)
	}

	return strings.TrimSpace(string(output)), nil
}
