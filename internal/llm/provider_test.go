package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProviderScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"cards":[]}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}},
	)
	ctx := context.Background()

	resp, err := mock.Generate(ctx, UserPrompt("sys", "first"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cards":[]}`, string(resp.Content))
	assert.Equal(t, 15, resp.Usage.Total())
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "mock", resp.Model)

	_, err = mock.Generate(ctx, UserPrompt("", "second"))
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)

	assert.Equal(t, 3, mock.CallCount())
	last, ok := mock.LastCall()
	require.True(t, ok)
	assert.Empty(t, last.Messages)
}

func TestMockProviderAddResponse(t *testing.T) {
	mock := NewMockProvider()
	_, ok := mock.LastCall()
	assert.False(t, ok)

	mock.AddResponse(MockResponse{Content: json.RawMessage(`"ok"`)})
	resp, err := mock.Generate(context.Background(), UserPrompt("", "hi"))
	require.NoError(t, err)
	assert.Equal(t, `"ok"`, string(resp.Content))
}

func TestUserPrompt(t *testing.T) {
	req := UserPrompt("be brief", "what is SM-2?")
	assert.Equal(t, "be brief", req.System)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, RoleUser, req.Messages[0].Role)
	assert.Equal(t, "what is SM-2?", req.Messages[0].Content)
}

func TestPurposeContext(t *testing.T) {
	assert.Equal(t, PurposeUnknown, PurposeFrom(context.Background()))
	ctx := WithPurpose(context.Background(), PurposeQuery)
	assert.Equal(t, PurposeQuery, PurposeFrom(ctx))
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", &ErrProviderUnavailable{Err: context.DeadlineExceeded}, false},
		{"rate limit", &ErrRateLimit{}, true},
		{"unavailable", &ErrProviderUnavailable{Err: errors.New("eof")}, true},
		{"invalid", &ErrInvalidResponse{Err: errors.New("bad")}, true},
		{"truncated", &ErrMaxTokensExceeded{}, false},
		{"rejected", classifyStatus(401, errors.New("bad key")), false},
		{"plain", errors.New("network"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Retryable(tt.err))
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("x")

	var rl *ErrRateLimit
	assert.ErrorAs(t, classifyStatus(429, base), &rl)

	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, classifyStatus(503, base), &unavail)
	assert.ErrorAs(t, classifyStatus(0, base), &unavail)

	rejected := classifyStatus(400, base)
	assert.ErrorIs(t, rejected, base)
	assert.Contains(t, rejected.Error(), "400")
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  float64 // cost of 1M in + 1M out
	}{
		{"claude-sonnet-4-5", 18},
		{"claude-sonnet-4-5-20250929", 18},
		{"gpt-4o-mini-2024-07-18", 0.75},
		{"google/gemini-2.5-flash", 2.8},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			require.NotNil(t, c)
			assert.InDelta(t, tt.want, c.Cost(1_000_000, 1_000_000), 1e-9)
		})
	}
	assert.Nil(t, LookupCost("mock"))
	assert.Nil(t, LookupCost(""))
}
