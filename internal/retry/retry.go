// Package retry provides an exponential backoff policy for outbound HTTP
// calls, applied through go-retryablehttp.
package retry

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Policy describes a bounded exponential backoff ladder.
type Policy struct {
	// MaxAttempts counts the first try; 4 means up to 3 retries.
	MaxAttempts int
	// BaseDelay is the wait before the first retry.
	BaseDelay time.Duration
	// Multiplier scales the wait after every retry.
	Multiplier float64
	// NonRetryable reports statuses that must be returned without retrying.
	NonRetryable func(status int) bool
	// OnRetry, when set, is called with every scheduled wait.
	OnRetry func(retry int, wait time.Duration)
}

// Default is four attempts waiting 1s, 2s, 4s, never retrying rate limits.
func Default() Policy {
	return Policy{
		MaxAttempts:  4,
		BaseDelay:    time.Second,
		Multiplier:   2,
		NonRetryable: RateLimited,
	}
}

// RateLimited reports whether status is HTTP 429.
func RateLimited(status int) bool {
	return status == http.StatusTooManyRequests
}

// Retries returns the number of retries after the first attempt.
func (p Policy) Retries() int {
	if p.MaxAttempts <= 1 {
		return 0
	}
	return p.MaxAttempts - 1
}

// Delay returns the wait before retry n (0-based).
func (p Policy) Delay(n int) time.Duration {
	m := p.Multiplier
	if m <= 0 {
		m = 1
	}
	return time.Duration(float64(p.BaseDelay) * math.Pow(m, float64(n)))
}

// Delays lists every wait of the ladder in order.
func (p Policy) Delays() []time.Duration {
	out := make([]time.Duration, 0, p.Retries())
	for i := 0; i < p.Retries(); i++ {
		out = append(out, p.Delay(i))
	}
	return out
}

// CheckRetry implements retryablehttp.CheckRetry. Transport errors and 5xx
// responses are retried; non-retryable statuses and other 4xx are not.
func (p Policy) CheckRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if resp == nil {
		return true, nil
	}
	if p.NonRetryable != nil && p.NonRetryable(resp.StatusCode) {
		return false, nil
	}
	if resp.StatusCode == 0 || (resp.StatusCode >= 500 && resp.StatusCode != http.StatusNotImplemented) {
		return true, nil
	}
	return false, nil
}

// Backoff implements retryablehttp.Backoff, ignoring the client's min/max.
func (p Policy) Backoff(_, _ time.Duration, attempt int, _ *http.Response) time.Duration {
	wait := p.Delay(attempt)
	if p.OnRetry != nil {
		p.OnRetry(attempt, wait)
	}
	return wait
}

// NewClient returns a retrying HTTP client driven by p. Attempts run one
// after another; each waits for the previous one to finish.
func NewClient(p Policy, timeout time.Duration) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = p.Retries()
	rc.RetryWaitMin = p.BaseDelay
	rc.RetryWaitMax = p.Delay(rc.RetryMax)
	rc.CheckRetry = p.CheckRetry
	rc.Backoff = p.Backoff
	rc.Logger = slog.Default()
	if timeout > 0 {
		rc.HTTPClient.Timeout = timeout
	}
	return rc
}
