package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/store"
)

// recordingRepo captures LLM events; other EventRepo methods are unused.
type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"cards":[]}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, "anthropic", repo, nil)

	ctx := WithPurpose(context.Background(), PurposeCardGen)
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "make cards"}},
		Schema:   &Schema{Name: "flashcard-batch", Definition: map[string]any{"type": "object"}},
	})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "anthropic", ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, string(PurposeCardGen), ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, 3, ev.OutputTokens)
	assert.Equal(t, `{"cards":[]}`, ev.ResponseBody)
	assert.Contains(t, ev.RequestBody, "[system]\nsys")
	assert.Contains(t, ev.RequestBody, "[user]\nmake cards")
	assert.Contains(t, ev.RequestBody, "[schema: flashcard-batch]")
}

func TestLoggingProvider_Latency(t *testing.T) {
	repo := &recordingRepo{}
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), "openai", repo, nil)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(1500 * time.Millisecond)}
	p.now = func() time.Time {
		now := ticks[0]
		ticks = ticks[1:]
		return now
	}

	_, err := p.Generate(context.Background(), UserPrompt("", "q"))
	require.NoError(t, err)
	require.Len(t, repo.events, 1)
	assert.EqualValues(t, 1500, repo.events[0].LatencyMs)
}

func TestTranscript(t *testing.T) {
	got := transcript(Request{
		System: "sys",
		Messages: []Message{
			{Role: RoleUser, Content: "question"},
			{Role: RoleAssistant, Content: "answer"},
		},
	})
	assert.Equal(t, "[system]\nsys\n\n[user]\nquestion\n\n[assistant]\nanswer\n", got)
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}})
	p := WithLogging(mock, "openai", repo, nil)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Equal(t, "unknown", repo.events[0].Purpose)
	assert.Contains(t, repo.events[0].ErrorMessage, "slow down")
}

func TestLoggingProvider_PersistenceErrorIgnored(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "gemini", repo, nil)

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil, nil)

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}
