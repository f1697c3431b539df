package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a card",
		"properties": map[string]any{
			"front": map[string]any{"type": "string"},
			"ease":  map[string]any{"type": "number"},
			"kind":  map[string]any{"type": "string", "enum": []any{"type_in", "cloze"}},
			"tags":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"odd":   map[string]any{"type": "null"},
		},
		"required": []string{"front", "kind"},
	}

	s := toGeminiSchema(def)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, "a card", s.Description)
	require.Len(t, s.Properties, 5)
	assert.Equal(t, genai.TypeNumber, s.Properties["ease"].Type)
	assert.Equal(t, []string{"type_in", "cloze"}, s.Properties["kind"].Enum)
	assert.Equal(t, genai.TypeArray, s.Properties["tags"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["tags"].Items.Type)
	assert.Equal(t, genai.TypeString, s.Properties["odd"].Type, "unknown types fall back to string")
	assert.Equal(t, []string{"front", "kind"}, s.Required)
}

func TestGeminiGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.5-flash:generateContent"), r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": `{"front":"q","back":"a"}`}}},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 7, "candidatesTokenCount": 4, "totalTokenCount": 11},
			"modelVersion":  "gemini-2.5-flash-001",
		})
	}))
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), Config{APIKey: "g-key", Model: "gemini-flash", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", p.ModelID())

	req := UserPrompt("You write flashcards.", "one card")
	req.Schema = flashcardSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"front":"q","back":"a"}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 7, OutputTokens: 4}, resp.Usage)
	assert.Equal(t, "gemini-2.5-flash-001", resp.Model)
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), Config{})
	assert.Error(t, err)
}
