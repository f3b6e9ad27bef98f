package jobseq

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the JobsEQ server base URL. Useful for proxies
// and tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken supplies a pre-acquired bearer token, skipping the password
// grant in [NewClient].
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sets the logger for request/response debug logging. By
// default the client logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithLookupCacheSize sets the capacity of the taxonomy-lookup cache.
// Lookup lists (regions, occupations, industries, and so on) are static
// reference data, so repeated calls are served from memory.
func WithLookupCacheSize(n int) Option {
	return func(c *Client) {
		c.lookupCacheSize = n
	}
}
