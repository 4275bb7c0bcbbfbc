package commons

import (
	"net/http"
	"time"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
// Tests use this to target an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithUserAgent sets the identifying User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each search request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient supplies a fully custom HTTP client, overriding the
// timeout-based default.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}
