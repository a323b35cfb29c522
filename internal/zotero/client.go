package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/citelib/zotero-mcp/internal/core/domain"
	"github.com/citelib/zotero-mcp/internal/core/ports/driven"
	"github.com/citelib/zotero-mcp/internal/logger"
)

const (
	// WebBaseURL is the Zotero Web API endpoint.
	WebBaseURL = "https://api.zotero.org"

	// LocalBaseURL is the Zotero 7 local API endpoint.
	LocalBaseURL = "http://localhost:23119/api"

	// APIVersion is the Zotero API version this client speaks.
	APIVersion = "3"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the maximum number of retries for transient errors.
	MaxRetries = 3

	// MaxResponseSize caps response bodies (attachments included) at 64 MiB.
	MaxResponseSize = 64 << 20
)

// Library types accepted by the API.
const (
	LibraryTypeUser  = "user"
	LibraryTypeGroup = "group"
)

// Ensure Client implements the interface.
var _ driven.LibraryClient = (*Client)(nil)

// Config holds the library coordinates and access mode.
type Config struct {
	// LibraryID is the numeric user or group ID.
	LibraryID string

	// LibraryType is "user" or "group".
	LibraryType string

	// APIKey authenticates against the web API. Unused in local mode.
	APIKey string

	// Local selects the Zotero 7 local API instead of the web API.
	Local bool

	// BaseURL overrides the API endpoint. Mainly for tests.
	BaseURL string
}

// Validate checks the configuration for a usable library address.
func (c *Config) Validate() error {
	if c.LibraryID == "" {
		return ErrMissingLibraryID
	}
	if c.LibraryType != LibraryTypeUser && c.LibraryType != LibraryTypeGroup {
		return ErrInvalidLibraryType
	}
	if !c.Local && c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Client is a Zotero API client scoped to a single library.
type Client struct {
	cfg         Config
	baseURL     string
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a client for the configured library.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.Local {
			baseURL = LocalBaseURL
		} else {
			baseURL = WebBaseURL
		}
	}

	return &Client{
		cfg:         cfg,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		rateLimiter: NewRateLimiter(),
	}, nil
}

// libraryPath returns the API path prefix for the configured library,
// e.g. /users/12345 or /groups/67890.
func (c *Client) libraryPath() string {
	return fmt.Sprintf("/%ss/%s", c.cfg.LibraryType, c.cfg.LibraryID)
}

// SearchItems performs a free-text search over the library.
// qmode=everything extends the search to creators and full-text content.
func (c *Client) SearchItems(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("qmode", "everything")
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.get(ctx, c.libraryPath()+"/items", params)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("search items: decoding response: %w", err)
	}

	logger.Info("zotero: search %q returned %d item(s)", query, len(items))
	return items, nil
}

// Item fetches a single item by key.
func (c *Client) Item(ctx context.Context, key string) (*domain.Item, error) {
	body, err := c.get(ctx, c.libraryPath()+"/items/"+url.PathEscape(key), nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("item %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get item %s: %w", key, err)
	}

	var item domain.Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("get item %s: decoding response: %w", key, err)
	}
	return &item, nil
}

// Children fetches the child items (notes, attachments) of an item.
func (c *Client) Children(ctx context.Context, key string) ([]domain.Item, error) {
	body, err := c.get(ctx, c.libraryPath()+"/items/"+url.PathEscape(key)+"/children", nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("item %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get children of %s: %w", key, err)
	}

	var items []domain.Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("get children of %s: decoding response: %w", key, err)
	}
	return items, nil
}

// Collection fetches a single collection by key.
func (c *Client) Collection(ctx context.Context, key string) (*domain.Collection, error) {
	body, err := c.get(ctx, c.libraryPath()+"/collections/"+url.PathEscape(key), nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("collection %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get collection %s: %w", key, err)
	}

	var collection domain.Collection
	if err := json.Unmarshal(body, &collection); err != nil {
		return nil, fmt.Errorf("get collection %s: decoding response: %w", key, err)
	}
	return &collection, nil
}

// File downloads the raw bytes of an attachment item.
// The web API answers with a redirect to the storage backend, which
// the default http.Client follows.
func (c *Client) File(ctx context.Context, key string) ([]byte, error) {
	body, err := c.get(ctx, c.libraryPath()+"/items/"+url.PathEscape(key)+"/file", nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("attachment %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("download file %s: %w", key, err)
	}
	return body, nil
}

// get performs a GET request with rate limiting and bounded retries on
// transient failures (429, 5xx).
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		body, retryable, err := c.doGet(ctx, requestURL)
		if err == nil {
			return body, nil
		}

		lastErr = err
		if !retryable {
			return nil, err
		}
		logger.Debug("zotero: retrying %s after error: %v (attempt %d/%d)",
			path, err, attempt+1, MaxRetries)
	}

	return nil, lastErr
}

// doGet performs a single GET request. The second return value reports
// whether the failure is worth retrying.
func (c *Client) doGet(ctx context.Context, requestURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Zotero-API-Version", APIVersion)
	// Local mode never transmits the key.
	if !c.cfg.Local && c.cfg.APIKey != "" {
		req.Header.Set("Zotero-API-Key", c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Surface rate limiting immediately; the recorded backoff gates the
	// next request instead of an inline retry sleeping out the window.
	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, true, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			URL:        requestURL,
		}
		return nil, resp.StatusCode >= 500, apiErr
	}

	return body, false, nil
}
