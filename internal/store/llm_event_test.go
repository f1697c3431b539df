package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLLMEvents(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()
	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "card-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "card-gen", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "query", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedLLMEvents(t, repo)
	ctx := context.Background()

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "query", all[0].Purpose)
	assert.Greater(t, all[0].Sequence, all[1].Sequence)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1, Before: all[0].Sequence})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, all[1].ID, limited[0].ID)

	got, err := repo.GetLLMEvent(ctx, all[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "rate limited", got.ErrorMessage)

	missing, err := repo.GetLLMEvent(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedLLMEvents(t, repo)
	ctx := context.Background()

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	assert.Equal(t, []LLMPurposeUsage{
		{Purpose: "card-gen", Calls: 2, InputTokens: 400, OutputTokens: 200, AvgLatencyMs: 300},
		{Purpose: "query", Calls: 1, InputTokens: 10, OutputTokens: 5, AvgLatencyMs: 50},
	}, byPurpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []LLMModelUsage{
		{Model: "claude-sonnet-4-5", Calls: 2, InputTokens: 400, OutputTokens: 200},
		{Model: "gpt-4o-mini", Calls: 1, InputTokens: 10, OutputTokens: 5},
	}, byModel)
}
