package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// LayerAcceptHeader is the media type every client API request negotiates.
const LayerAcceptHeader = "application/vnd.layer+json; version=1.0"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.layer.com", 15*time.Second)
//	resp, err := client.R().Post("/nonces")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL that sends the client API
// Accept and Content-Type headers. A non-positive timeout leaves resty's
// default (none) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", LayerAcceptHeader).
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		cli.SetTimeout(timeout)
	}

	return &HTTPClient{Client: cli}
}

// SessionAuthorization formats the Authorization header value for a session
// token.
func SessionAuthorization(token string) string {
	return `Layer session-token="` + token + `"`
}
