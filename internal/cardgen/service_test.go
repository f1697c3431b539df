package cardgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/llm"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

func mockJSON(v any) llm.MockResponse {
	b, _ := json.Marshal(v)
	return llm.MockResponse{Content: b}
}

func TestProcessContent(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(map[string]any{
		"fact_check_results": []map[string]any{
			{"claim": "Lima is the capital of Peru", "accurate": true, "correction": ""},
			{"claim": "Peru borders Argentina", "accurate": false, "correction": "Peru does not border Argentina"},
		},
		"cards": []map[string]any{
			{"type": "type_in", "front": "Capital of Peru?", "back": "Lima", "hint": ""},
			{"type": "cloze", "front": "{{c1::Lima}} is the capital of Peru", "back": "Lima", "hint": "city"},
			{"type": "essay", "front": "Describe Peru", "back": "...", "hint": ""},
			{"type": "reverse", "front": "  ", "back": "dropped", "hint": ""},
		},
		"summary":        "Peru basics.",
		"key_points":     []string{"Lima is the capital"},
		"related_topics": []string{"Andes"},
	}))
	svc := NewService(mock, DefaultConfig(), nil)

	got, err := svc.ProcessContent(context.Background(), "Lima is the capital of Peru.", "geography")
	require.NoError(t, err)

	require.Len(t, got.Cards, 3)
	assert.Equal(t, "type_in", got.Cards[0].Type)
	assert.Equal(t, "cloze", got.Cards[1].Type)
	assert.Equal(t, "city", got.Cards[1].Hint)
	assert.Equal(t, "type_in", got.Cards[2].Type, "unknown types fall back to type_in")
	require.Len(t, got.FactChecks, 2)
	assert.False(t, got.FactChecks[1].Accurate)
	assert.Equal(t, "Peru basics.", got.Summary)
	assert.Equal(t, []string{"Andes"}, got.RelatedTopics)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, ProcessSchema, call.Schema)
	assert.Contains(t, call.Messages[0].Content, "Category: geography")
	assert.Contains(t, call.Messages[0].Content, "Lima is the capital of Peru.")
}

func TestProcessContent_Empty(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.ProcessContent(context.Background(), "   \n", "x")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Equal(t, 0, mock.CallCount())
}

func TestProcessContent_NoCards(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(map[string]any{
		"fact_check_results": []any{},
		"cards":              []any{},
		"summary":            "",
		"key_points":         []any{},
		"related_topics":     []any{},
	}))
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.ProcessContent(context.Background(), "notes", "")
	assert.ErrorIs(t, err, ErrNoCards)
}

func TestProcessContent_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.ProcessContent(context.Background(), "notes", "")
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestProcessContent_TruncatesLongContent(t *testing.T) {
	mock := llm.NewMockProvider()
	cfg := DefaultConfig()
	cfg.MaxContentChars = 10
	svc := NewService(mock, cfg, nil)

	_, _ = svc.ProcessContent(context.Background(), strings.Repeat("é", 20), "")
	require.Equal(t, 1, mock.CallCount())
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, strings.Repeat("é", 5))
	assert.NotContains(t, msg, strings.Repeat("é", 6))
}

func TestGenerateQuestions(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(map[string]any{
		"questions": []map[string]any{
			{"type": "reverse", "front": "Lima", "back": "Capital of Peru", "encouragement": "Nearly there!"},
		},
	}))
	cfg := DefaultConfig()
	cfg.MaxHistory = 1
	svc := NewService(mock, cfg, nil)

	history := []ReviewSummary{
		{Front: "Capital of Peru?", Quality: 1, Lapses: 2},
		{Front: "Capital of Chile?", Quality: 5},
	}
	qs, err := svc.GenerateQuestions(context.Background(), history, "geography")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "reverse", qs[0].Type)
	assert.Equal(t, "Nearly there!", qs[0].Encouragement)

	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, `"Capital of Peru?" quality=1 lapses=2`)
	assert.NotContains(t, msg, "Chile", "history is capped at MaxHistory")
}

func TestAnswerQuery(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(map[string]any{
		"answer":         "Lima.",
		"references":     []string{"#1"},
		"related_topics": []string{"Cusco"},
	}))
	svc := NewService(mock, DefaultConfig(), nil)

	knowledge := FormatKnowledge([]*store.Card{
		{ID: 1, Front: "Capital of\nPeru?", Back: "Lima", State: spacedrep.NewState()},
	})
	assert.Equal(t, "[#1] Capital of Peru? => Lima\n", knowledge)

	ans, err := svc.AnswerQuery(context.Background(), "What is Peru's capital?", knowledge)
	require.NoError(t, err)
	assert.Equal(t, "Lima.", ans.Answer)
	assert.Equal(t, []string{"#1"}, ans.References)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "[#1] Capital of Peru? => Lima")

	_, err = svc.AnswerQuery(context.Background(), " ", knowledge)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestToNewCards(t *testing.T) {
	cat := 7
	got := ToNewCards([]Card{
		{Type: "cloze", Front: "{{c1::x}}", Back: "x", Hint: "letter"},
		{Type: "type_in", Front: "q", Back: "a"},
	}, &cat)

	require.Len(t, got, 2)
	assert.Equal(t, store.CardTypeCloze, got[0].Type)
	assert.Equal(t, &cat, got[0].CategoryID)
	assert.Equal(t, map[string]any{"hint": "letter"}, got[0].Metadata)
	assert.Nil(t, got[1].Metadata)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 0))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "a", truncate("aé", 2), "never splits a rune")
}
