package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-wellness"

// HTTPClient is a resty client for calls to outside services.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that makes exactly one attempt per request,
// gives up after timeout and asks for JSON. A zero timeout means no limit.
// Every call builds its own connection pool.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		Client: resty.New().
			SetRetryCount(0).
			SetTimeout(timeout).
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", "application/json"),
	}
}
