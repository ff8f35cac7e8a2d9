package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultHTTPClientTimeout bounds every request made by clients created with
// NewHTTPClient when no explicit timeout is given.
const DefaultHTTPClientTimeout = 15 * time.Second

// HTTPClient is a wrapper around resty.Client preconfigured for talking to
// the JSON API.
//
//	client := utils.NewHTTPClient("http://localhost:3000", 0)
//	resp, err := client.R().SetResult(&out).Get("/profile")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client rooted at baseURL that sends and accepts
// JSON. A non-positive timeout selects DefaultHTTPClientTimeout.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultHTTPClientTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}
