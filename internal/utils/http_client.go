package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://project.supabase.co/rest/v1", 10*time.Second)
//	resp, err := client.R().Get("/items")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. A zero timeout leaves the
// request deadline to the caller's context.
//
// Parameters:
//
//	baseURL - prefix prepended to every relative request path
//	timeout - per-request timeout
//
// Returns:
//
//	*HTTPClient - a ready-to-use HTTP client
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithAPIKey authenticates every request with the given key, sending it both
// as the "apikey" header and as a bearer token.
func (c *HTTPClient) WithAPIKey(key string) *HTTPClient {
	c.SetHeader("apikey", key)
	c.SetAuthToken(key)
	return c
}
