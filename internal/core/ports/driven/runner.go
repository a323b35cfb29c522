package driven

import "context"

// CommandRunner executes an external command and returns its stdout.
// It exists so content extractors that shell out (pdftotext) can be
// tested without the binary installed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
