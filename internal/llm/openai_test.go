package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1717236000,
		"model":   "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p, err := NewOpenAIProvider(Config{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	return p
}

func TestOpenAIGenerate(t *testing.T) {
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name   string `json:"name"`
				Strict bool   `json:"strict"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, chatCompletion(`{"front":"Capital of Peru?","back":"Lima"}`, "stop"))
	})

	req := UserPrompt("You write flashcards.", "One card about Peru.")
	req.Schema = flashcardSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.JSONEq(t, `{"front":"Capital of Peru?","back":"Lima"}`, string(resp.Content))
	assert.Equal(t, 65, resp.Usage.Total())
	assert.Equal(t, "gpt-4o-mini-2024-07-18", resp.Model)

	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "user", body.Messages[1].Role)
	assert.Equal(t, "json_schema", body.ResponseFormat.Type)
	assert.Equal(t, "test-flashcard", body.ResponseFormat.JSONSchema.Name)
	assert.True(t, body.ResponseFormat.JSONSchema.Strict)
}

func TestOpenAILengthIsTruncation(t *testing.T) {
	p := newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, chatCompletion(`{"front":`, "length"))
	})
	_, err := p.Generate(context.Background(), Request{Schema: flashcardSchema, Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}

func TestOpenAINoChoices(t *testing.T) {
	p := newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) {
		resp := chatCompletion("", "stop")
		resp["choices"] = []any{}
		writeJSON(w, http.StatusOK, resp)
	})
	_, err := p.Generate(context.Background(), UserPrompt("", "x"))
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestOpenAIErrors(t *testing.T) {
	apiError := map[string]any{"error": map[string]any{"message": "nope", "type": "x"}}
	tests := []struct {
		status    int
		retryable bool
	}{
		{http.StatusTooManyRequests, true},
		{http.StatusBadGateway, true},
		{http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p := newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, apiError)
			})
			_, err := p.Generate(context.Background(), UserPrompt("", "x"))
			require.Error(t, err)
			assert.Equal(t, tt.retryable, Retryable(err))
			if tt.status == http.StatusTooManyRequests {
				var rl *ErrRateLimit
				assert.ErrorAs(t, err, &rl)
			}
		})
	}
}

func TestOpenRouterSendsAttributionHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "smartanki", r.Header.Get("X-Title"))
		assert.NotEmpty(t, r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Bearer sk-or", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, chatCompletion(`plain answer`, "stop"))
	}))
	t.Cleanup(srv.Close)

	p, err := NewOpenRouterProvider(Config{APIKey: "sk-or", Model: "google/gemini-2.5-flash", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.5-flash", p.ModelID())

	resp, err := p.Generate(context.Background(), UserPrompt("", "hi"))
	require.NoError(t, err)
	assert.Equal(t, "plain answer", string(resp.Content))
}

func TestNewOpenAIProvidersRequireKey(t *testing.T) {
	_, err := NewOpenAIProvider(Config{})
	assert.Error(t, err)
	_, err = NewOpenRouterProvider(Config{})
	assert.Error(t, err)
}
