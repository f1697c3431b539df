package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flashcardSchema = &Schema{
	Name: "test-flashcard",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"front": map[string]any{"type": "string"},
			"back":  map[string]any{"type": "string"},
			"type":  map[string]any{"type": "string", "enum": []string{"type_in", "cloze"}},
		},
		"required":             []string{"front", "back"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"front":"2+2","back":"4"}`, false},
		{"valid with enum", `{"front":"a","back":"b","type":"cloze"}`, false},
		{"missing field", `{"front":"2+2"}`, true},
		{"bad enum", `{"front":"a","back":"b","type":"essay"}`, true},
		{"extra field", `{"front":"a","back":"b","hint":"c"}`, true},
		{"not json", `front: 2+2`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(flashcardSchema, json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage("plain text")))
}

func TestSchemaRegistryCaches(t *testing.T) {
	a, err := schemas.get(flashcardSchema)
	require.NoError(t, err)
	b, err := schemas.get(flashcardSchema)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestStripFences(t *testing.T) {
	tests := map[string]string{
		`{"a":1}`:                  `{"a":1}`,
		"  {\"a\":1}\n":            `{"a":1}`,
		"```json\n{\"a\":1}\n```":  `{"a":1}`,
		"```\n{\"a\":1}\n```\n":    `{"a":1}`,
		"```json\n[1, 2]\n```   ": `[1, 2]`,
	}
	for in, want := range tests {
		assert.Equal(t, want, stripFences(in), "input %q", in)
	}
}

func TestFinish(t *testing.T) {
	req := Request{Schema: flashcardSchema}

	resp, err := finish(req, "```json\n{\"front\":\"q\",\"back\":\"a\"}\n```", Usage{InputTokens: 3}, "m", StopEnd)
	require.NoError(t, err)
	assert.JSONEq(t, `{"front":"q","back":"a"}`, string(resp.Content))
	assert.Equal(t, "m", resp.Model)

	_, err = finish(req, `{"front":"q",`, Usage{}, "m", StopMaxTokens)
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)

	// Without a schema the text passes through untouched.
	resp, err = finish(Request{}, "```not stripped```", Usage{}, "m", StopEnd)
	require.NoError(t, err)
	assert.Equal(t, "```not stripped```", string(resp.Content))
}
