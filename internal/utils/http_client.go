package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	userAgent       = "research-gateway-client"
	retryCount      = 2
	retryWaitTime   = 200 * time.Millisecond
	retryMaxWaiting = time.Second
)

// HTTPClient embeds *resty.Client so all of its methods are available
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. A positive timeout bounds
// every request including retries of it. Requests are retried on transport
// errors and on 502, 503 and 504 responses.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaiting).
		AddRetryCondition(isRetryable)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

func isRetryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
