package driven

import "context"

// ContentExtractor converts attachment bytes into plain text.
// The PDF implementation lives in internal/parsers.
type ContentExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}
