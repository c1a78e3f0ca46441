package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	retryWaitMin = time.Second
	retryWaitMax = 5 * time.Second
)

// NewRetryClient returns a standard client that retries connection failures (never HTTP statuses)
// and logs every attempt through LoggingRoundTripper.
func NewRetryClient(attempts int, timeout time.Duration) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = attempts
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = timeout
	retryClient.HTTPClient.Transport = NewLoggingRoundTripper(nil)

	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return retryClient.StandardClient()
}
