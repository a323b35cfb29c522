package zotero

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the proactive throttle rate in requests per second.
	// The Zotero API documents no hard quota but asks clients to back off
	// when told; a gentle steady rate keeps us clear of 429s.
	ProactiveRate = 5

	// HeaderBackoff asks clients to pause for the given seconds even on
	// successful responses.
	HeaderBackoff = "Backoff"

	// HeaderRetryAfter is sent with 429 and 503 responses.
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter combines proactive throttling with the reactive backoff
// the Zotero API signals through response headers.
type RateLimiter struct {
	mu           sync.Mutex
	backoffUntil time.Time     // From Backoff / Retry-After headers
	bucket       *rate.Limiter // Proactive throttling
}

// NewRateLimiter creates a rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	until := r.backoffUntil
	r.mu.Unlock()

	if time.Now().Before(until) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(until)):
		}
	}

	return nil
}

// UpdateFromResponse records any Backoff request from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	if seconds := parseSeconds(resp.Header.Get(HeaderBackoff)); seconds > 0 {
		r.setBackoff(seconds)
	}
}

// CheckRateLimit checks if the response indicates rate limiting.
// Returns a RateLimitError if rate limited, nil otherwise.
func (r *RateLimiter) CheckRateLimit(resp *http.Response) error {
	if resp == nil {
		return nil
	}

	r.UpdateFromResponse(resp)

	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return nil
	}

	seconds := parseSeconds(resp.Header.Get(HeaderRetryAfter))
	if seconds <= 0 {
		seconds = 30 // API sent no Retry-After; wait a conservative default
	}
	retryAt := r.setBackoff(seconds)

	return &RateLimitError{RetryAt: retryAt}
}

// BackoffUntil returns the time before which no request should be made.
func (r *RateLimiter) BackoffUntil() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backoffUntil
}

func (r *RateLimiter) setBackoff(seconds int) time.Time {
	until := time.Now().Add(time.Duration(seconds) * time.Second)

	r.mu.Lock()
	defer r.mu.Unlock()
	if until.After(r.backoffUntil) {
		r.backoffUntil = until
	}
	return r.backoffUntil
}

func parseSeconds(value string) int {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return seconds
}
