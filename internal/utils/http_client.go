package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
// Used by the cmd/seed tool to drive the public API.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().Get("/tasks")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with the given
// base URL configured on the underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{Client: resty.New().SetBaseURL(baseURL)}
}
