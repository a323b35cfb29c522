package zotero

import (
	"errors"
	"fmt"
	"time"
)

// Configuration errors.
var (
	// ErrMissingLibraryID indicates no library ID was configured.
	ErrMissingLibraryID = errors.New("zotero: library ID is required")

	// ErrInvalidLibraryType indicates a library type other than user or group.
	ErrInvalidLibraryType = errors.New("zotero: library type must be user or group")

	// ErrMissingAPIKey indicates web API access without an API key.
	ErrMissingAPIKey = errors.New("zotero: API key is required for web API access")
)

// RateLimitError represents a rate limit response with its retry time.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("zotero: rate limited, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// APIError represents a non-2xx Zotero API response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zotero: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a missing item or collection.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an invalid or missing API key.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}
