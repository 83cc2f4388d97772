package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient provider failures with exponential
// backoff and jitter. Schema violations get exactly one retry; context
// cancellation and token-limit errors are surfaced immediately.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !r.retryable(err, &invalidRetried) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *RetryProvider) retryable(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Token limits are a configuration problem, not a transient one.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	// A malformed response gets one more chance.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Everything else (rate limits, 5xx, network) is treated as transient.
	return true
}

// wait computes the backoff before the next attempt. A rate-limit
// Retry-After hint takes precedence.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	backoff := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	backoff = math.Min(backoff, float64(r.cfg.MaxWait))

	// ±20% jitter keeps concurrent clients from thundering.
	backoff += backoff * 0.2 * (2*rand.Float64() - 1)
	if backoff < 0 {
		backoff = 0
	}
	return time.Duration(backoff)
}
