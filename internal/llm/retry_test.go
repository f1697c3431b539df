package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRetry returns a retrier that records waits instead of sleeping.
func newTestRetry(inner Provider, attempts int) (*RetryProvider, *[]time.Duration) {
	var waits []time.Duration
	r := WithRetry(inner, RetryConfig{
		MaxAttempts: attempts,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  2,
	}, 0)
	r.jitter = func() float64 { return 0.5 }
	r.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return r, &waits
}

func okResponse() MockResponse {
	return MockResponse{Content: json.RawMessage(`{}`)}
}

func TestRetryRecoversFromTransientErrors(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("502")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("502")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("502")}},
		okResponse(),
	)
	r, waits := newTestRetry(mock, 4)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 4, mock.CallCount())
	// 100ms, 200ms, then capped at 300ms.
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}, *waits)
}

func TestRetryGivesUp(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("a")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("b")}},
	)
	r, waits := newTestRetry(mock, 2)

	_, err := r.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.EqualError(t, errors.Unwrap(err), "b")
	assert.Len(t, *waits, 1, "no sleep after the last attempt")
}

func TestRetryHonoursRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 7 * time.Second, Err: errors.New("429")}},
		okResponse(),
	)
	r, waits := newTestRetry(mock, 3)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{7 * time.Second}, *waits)
}

func TestRetryInvalidResponseOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("schema")}}
	mock := NewMockProvider(bad, bad, okResponse())
	r, _ := newTestRetry(mock, 5)

	_, err := r.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetryStopsOnPermanentErrors(t *testing.T) {
	for name, e := range map[string]error{
		"truncated": &ErrMaxTokensExceeded{},
		"rejected":  classifyStatus(401, errors.New("bad key")),
		"canceled":  context.Canceled,
	} {
		t.Run(name, func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Err: e}, okResponse())
			r, waits := newTestRetry(mock, 3)

			_, err := r.Generate(context.Background(), Request{})
			assert.Error(t, err)
			assert.Equal(t, 1, mock.CallCount())
			assert.Empty(t, *waits)
		})
	}
}

func TestRetrySleepCancelled(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, okResponse())
	r := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1}, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetryTimeoutBoundsExchange(t *testing.T) {
	slow := providerFunc(func(ctx context.Context, _ Request) (*Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	r := WithRetry(slow, DefaultRetry(), 10*time.Millisecond)

	_, err := r.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRetryConfigWait(t *testing.T) {
	c := DefaultRetry()
	assert.Equal(t, time.Second, c.wait(0))
	assert.Equal(t, 2*time.Second, c.wait(1))
	assert.Equal(t, 8*time.Second, c.wait(3))
	assert.Equal(t, 10*time.Second, c.wait(4))
}

type providerFunc func(ctx context.Context, req Request) (*Response, error)

func (f providerFunc) Generate(ctx context.Context, req Request) (*Response, error) { return f(ctx, req) }
func (f providerFunc) ModelID() string                                             { return "func" }
