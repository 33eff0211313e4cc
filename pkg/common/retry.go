package common

import (
	"io"
	"net/http"
	"time"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 5 * time.Second
)

// NewRetryingClient creates an http client that retries failed requests.
func NewRetryingClient() *http.Client {
	return &http.Client{Transport: NewRetryingTransport(http.DefaultTransport)}
}

// NewRetryingTransport wraps the given transport so that transport errors and
// server/throttling responses (5xx, 429) are retried with exponential backoff.
// Client errors like 404 are never retried.
func NewRetryingTransport(next http.RoundTripper) http.RoundTripper {
	return &retryingTransport{next: next, attempts: retryAttempts, baseDelay: retryBaseDelay}
}

type retryingTransport struct {
	next      http.RoundTripper
	attempts  int
	baseDelay time.Duration
}

func (t *retryingTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	// A body that cannot be rewound cannot be retried
	if request.Body != nil && request.GetBody == nil {
		return t.next.RoundTrip(request)
	}

	var resp *http.Response
	var err error
	for attempt := 0; attempt < t.attempts; attempt++ {
		if attempt > 0 {
			// The delay doubles per attempt, capped at the maximum
			delay := min(t.baseDelay*(1<<(attempt-1)), retryMaxDelay)
			select {
			case <-request.Context().Done():
				return nil, request.Context().Err()
			case <-time.After(delay):
			}
			// Rewind the body for the retry if there is one
			if request.GetBody != nil {
				body, bodyErr := request.GetBody()
				if bodyErr != nil {
					return nil, bodyErr
				}
				request.Body = body
			}
		}

		resp, err = t.next.RoundTrip(request)
		if err != nil {
			continue
		}
		if !isRetryableStatus(resp.StatusCode) || attempt == t.attempts-1 {
			return resp, nil
		}
		// Drain and close the body so the connection can be reused for the retry
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
	return nil, err
}

func isRetryableStatus(statusCode int) bool {
	return statusCode >= 500 || statusCode == http.StatusTooManyRequests
}
