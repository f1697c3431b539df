package cardgen

import "github.com/smartanki/smartanki/internal/llm"

var cardTypes = []any{"type_in", "reverse", "cloze"}

// ProcessSchema defines the JSON schema for content processing.
var ProcessSchema = &llm.Schema{
	Name:        "processed-content",
	Description: "Fact-check results, flashcards, a focused summary and related topics for a piece of study content",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fact_check_results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"claim":      map[string]any{"type": "string"},
						"accurate":   map[string]any{"type": "boolean"},
						"correction": map[string]any{"type": "string", "description": "Empty when accurate"},
					},
					"required":             []any{"claim", "accurate", "correction"},
					"additionalProperties": false,
				},
			},
			"cards": map[string]any{
				"type":     "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":  map[string]any{"type": "string", "enum": cardTypes},
						"front": map[string]any{"type": "string", "description": "Prompt; for cloze use {{c1::...}} markers"},
						"back":  map[string]any{"type": "string"},
						"hint":  map[string]any{"type": "string", "description": "Optional cloze hint, may be empty"},
					},
					"required":             []any{"type", "front", "back", "hint"},
					"additionalProperties": false,
				},
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Short, skimmable summary (3-5 sentences)",
			},
			"key_points": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"related_topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"fact_check_results", "cards", "summary", "key_points", "related_topics"},
		"additionalProperties": false,
	},
}

// QuestionSchema defines the JSON schema for personalised questions.
var QuestionSchema = &llm.Schema{
	Name:        "practice-questions",
	Description: "Practice questions targeting the learner's weakest cards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":          map[string]any{"type": "string", "enum": cardTypes},
						"front":         map[string]any{"type": "string"},
						"back":          map[string]any{"type": "string"},
						"encouragement": map[string]any{"type": "string", "description": "One short encouraging line"},
					},
					"required":             []any{"type", "front", "back", "encouragement"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// AnswerSchema defines the JSON schema for knowledge-base queries.
var AnswerSchema = &llm.Schema{
	Name:        "knowledge-answer",
	Description: "An answer grounded in the supplied cards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"references": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Card ids or quoted fragments the answer relies on",
			},
			"related_topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"answer", "references", "related_topics"},
		"additionalProperties": false,
	},
}
