package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryConfig controls the retry decorator. Wait grows by Multiplier from
// InitialWait up to MaxWait, with ±20% jitter.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func (c RetryConfig) wait(attempt int) time.Duration {
	w := float64(c.InitialWait)
	for range attempt {
		w *= c.Multiplier
		if w >= float64(c.MaxWait) {
			return time.Duration(c.MaxWait)
		}
	}
	return time.Duration(w)
}

// RetryProvider re-issues requests that fail with a Retryable error. It
// also bounds the whole exchange by Timeout when set.
type RetryProvider struct {
	inner   Provider
	cfg     RetryConfig
	timeout time.Duration
	jitter  func() float64 // in [0,1)
	sleep   func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps p.
func WithRetry(p Provider, cfg RetryConfig, timeout time.Duration) *RetryProvider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, cfg: cfg, timeout: timeout, jitter: rand.Float64, sleep: sleepCtx}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var (
		err          error
		invalidTries int
	)
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !Retryable(err) {
			return nil, err
		}
		var inv *ErrInvalidResponse
		if errors.As(err, &inv) {
			invalidTries++
			if invalidTries > 1 {
				return nil, err
			}
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		if serr := r.sleep(ctx, r.delay(attempt, err)); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	base := r.cfg.wait(attempt)
	return base + time.Duration(float64(base)*0.2*(2*r.jitter()-1))
}
