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
//	client := utils.NewHTTPClient("https://relay.example.com", 10*time.Second)
//	resp, err := client.R().Post("/send")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL. A zero timeout leaves
// resty's default (no timeout) in place; callers usually also bound each
// request with a context deadline. Retries are disabled.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
