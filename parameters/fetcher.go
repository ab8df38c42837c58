package parameters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/poly-layer/snarkVM/log"
)

// Fetcher retrieves the bytes of a remote parameter. maxSize is the hard cap
// on the accepted body: the transfer is aborted as soon as it is exceeded, so
// a misbehaving server can never grow the buffer unbounded.
type Fetcher interface {
	Fetch(ctx context.Context, url string, maxSize int64) ([]byte, error)
}

// RetryPolicy bounds the fetch attempts for transient failures. Delay grows
// exponentially: BaseDelay, BaseDelay*Multiplier, and so on.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy returns the retry policy used when none is provided:
// three attempts starting at 500ms, doubling between attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		Multiplier:  2,
	}
}

// permanentError marks a fetch failure that retrying cannot fix, such as a
// 4xx response or an oversized body.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// HTTPFetcher fetches parameter bytes over HTTP(S) GET with bounded retries
// and exponential backoff. 5xx responses and transport errors are retried,
// 4xx responses are treated as permanent (bad URL or configuration).
type HTTPFetcher struct {
	client *http.Client
	policy RetryPolicy

	// sleep waits for the backoff delay, honoring context cancellation.
	// Tests inject a no-op to run deterministically.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewHTTPFetcher returns an HTTPFetcher using the given client and retry
// policy. A nil client falls back to http.DefaultClient.
func NewHTTPFetcher(client *http.Client, policy RetryPolicy) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Multiplier < 1 {
		policy.Multiplier = 1
	}
	return &HTTPFetcher{
		client: client,
		policy: policy,
		sleep:  sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Fetch downloads url, retrying transient failures per the policy. The
// returned bytes are at most maxSize; a larger body aborts the transfer.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, maxSize int64) ([]byte, error) {
	delay := f.policy.BaseDelay
	var lastErr error
	for attempt := range f.policy.MaxAttempts {
		data, err := f.fetchOnce(ctx, url, maxSize)
		if err == nil {
			return data, nil
		}
		var perm *permanentError
		if errors.As(err, &perm) {
			log.Warnw("parameter fetch failed with permanent error, not retrying",
				"url", url, "error", err.Error())
			return nil, err
		}
		lastErr = err
		log.Warnw("parameter fetch failed",
			"url", url, "attempt", attempt+1, "maxAttempts", f.policy.MaxAttempts, "error", err.Error())
		if attempt < f.policy.MaxAttempts-1 {
			if serr := f.sleep(ctx, delay); serr != nil {
				return nil, serr
			}
			delay = time.Duration(float64(delay) * f.policy.Multiplier)
		}
	}
	return nil, fmt.Errorf("fetch %s failed after %d attempts: %w", url, f.policy.MaxAttempts, lastErr)
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, url string, maxSize int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &permanentError{fmt.Errorf("create request for %s: %w", url, err)}
	}
	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Warnw("failed to close response body", "url", url, "error", err.Error())
		}
	}()

	switch {
	case res.StatusCode == http.StatusOK:
		// proceed to the body
	case res.StatusCode >= 400 && res.StatusCode < 500:
		return nil, &permanentError{fmt.Errorf("fetch %s: status code %d", url, res.StatusCode)}
	default:
		return nil, fmt.Errorf("fetch %s: status code %d", url, res.StatusCode)
	}

	if res.ContentLength > maxSize {
		return nil, &permanentError{fmt.Errorf("fetch %s: announced size %d exceeds limit %d",
			url, res.ContentLength, maxSize)}
	}

	// Read one byte past the cap so an oversized body is detected without
	// buffering it whole.
	data, err := io.ReadAll(io.LimitReader(res.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", url, err)
	}
	if int64(len(data)) > maxSize {
		return nil, &permanentError{fmt.Errorf("fetch %s: body exceeds limit %d", url, maxSize)}
	}
	return data, nil
}
