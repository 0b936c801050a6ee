package http

import (
	"context"
	"time"

	"github.com/fwojciec/resdesk"
)

// DefaultRetryDelays are the waits between attempts of a failed fetch: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// fetchWithRetry calls fetch until it succeeds or the delays run out.
// ENOTFOUND and EINVALID are final and returned at once.
func fetchWithRetry(ctx context.Context, url string, fetch func(context.Context, string) (string, error), delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		switch resdesk.ErrorCode(err) {
		case resdesk.ENOTFOUND, resdesk.EINVALID:
			return "", err
		}
		if attempt == len(delays) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}
