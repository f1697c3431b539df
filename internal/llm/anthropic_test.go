package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewAnthropicProvider(
		Config{APIKey: "test-key", Model: "claude-sonnet", BaseURL: srv.URL},
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-sonnet-4-5-20250929",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAnthropicGenerate(t *testing.T) {
	var body map[string]any
	p := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, anthropicMessage(`{"front":"Capital of Peru?","back":"Lima"}`, "end_turn"))
	})
	assert.Equal(t, "claude-sonnet-4-5", p.ModelID())

	req := UserPrompt("You write flashcards.", "One card about Peru.")
	req.MaxTokens = 256
	req.Schema = flashcardSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.JSONEq(t, `{"front":"Capital of Peru?","back":"Lima"}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 30}, resp.Usage)
	assert.Equal(t, "claude-sonnet-4-5-20250929", resp.Model)
	assert.Equal(t, StopEnd, resp.StopReason)

	assert.Equal(t, "claude-sonnet-4-5", body["model"])
	assert.EqualValues(t, 256, body["max_tokens"])
}

func TestAnthropicMaxTokens(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, anthropicMessage(`{"front":"Capi`, "max_tokens"))
	})
	_, err := p.Generate(context.Background(), Request{Schema: flashcardSchema, MaxTokens: 5,
		Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}

func TestAnthropicSchemaMismatch(t *testing.T) {
	p := newTestAnthropic(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, anthropicMessage(`{"question":"?"}`, "end_turn"))
	})
	_, err := p.Generate(context.Background(), Request{Schema: flashcardSchema, MaxTokens: 64,
		Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestAnthropicErrors(t *testing.T) {
	apiError := func(kind string) map[string]any {
		return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": kind}}
	}

	t.Run("rate limit", func(t *testing.T) {
		p := newTestAnthropic(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Retry-After", "12")
			writeJSON(w, http.StatusTooManyRequests, apiError("rate_limit_error"))
		})
		_, err := p.Generate(context.Background(), UserPrompt("", "x"))
		var rl *ErrRateLimit
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, 12*time.Second, rl.RetryAfter)
	})

	t.Run("server error", func(t *testing.T) {
		p := newTestAnthropic(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, apiError("api_error"))
		})
		_, err := p.Generate(context.Background(), UserPrompt("", "x"))
		var unavail *ErrProviderUnavailable
		assert.ErrorAs(t, err, &unavail)
	})

	t.Run("bad key", func(t *testing.T) {
		p := newTestAnthropic(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, apiError("authentication_error"))
		})
		_, err := p.Generate(context.Background(), UserPrompt("", "x"))
		require.Error(t, err)
		assert.False(t, Retryable(err))
	})
}

func TestNewAnthropicProviderRequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(Config{})
	assert.Error(t, err)
}

func TestRetryAfterHeader(t *testing.T) {
	h := http.Header{}
	assert.Zero(t, retryAfter(h))
	h.Set("Retry-After", "3")
	assert.Equal(t, 3*time.Second, retryAfter(h))
	h.Set("Retry-After", "Wed, 21 Oct 2015 07:28:00 GMT")
	assert.Zero(t, retryAfter(h))
}
