package cardgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/smartanki/smartanki/internal/llm"
	"github.com/smartanki/smartanki/internal/logger"
	"github.com/smartanki/smartanki/internal/store"
)

var (
	// ErrEmptyContent is returned when there is nothing to generate from.
	ErrEmptyContent = errors.New("cardgen: content is empty")
	// ErrEmptyQuery is returned for a blank knowledge-base question.
	ErrEmptyQuery = errors.New("cardgen: query is empty")
	// ErrNoCards is returned when the model produced no usable cards.
	ErrNoCards = errors.New("cardgen: no cards generated")
)

// Service turns study material into cards and answers questions about it.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewService creates a card generation service.
func NewService(provider llm.Provider, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{provider: provider, cfg: cfg, log: log.With("component", "cardgen")}
}

type processOutput struct {
	FactCheckResults []struct {
		Claim      string `json:"claim"`
		Accurate   bool   `json:"accurate"`
		Correction string `json:"correction"`
	} `json:"fact_check_results"`
	Cards []struct {
		Type  string `json:"type"`
		Front string `json:"front"`
		Back  string `json:"back"`
		Hint  string `json:"hint"`
	} `json:"cards"`
	Summary       string   `json:"summary"`
	KeyPoints     []string `json:"key_points"`
	RelatedTopics []string `json:"related_topics"`
}

// ProcessContent fact-checks content and generates cards, a summary and
// related topics for it.
func (s *Service) ProcessContent(ctx context.Context, content, category string) (*ProcessedContent, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeCardGen)

	req := llm.Request{
		System: processSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildProcessUserMessage(truncate(content, s.cfg.MaxContentChars), category)},
		},
		Schema:      ProcessSchema,
		MaxTokens:   s.cfg.ProcessMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("content processing: %w", err)
	}

	var out processOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse content response: %w", err)
	}

	result := &ProcessedContent{
		Summary:       out.Summary,
		KeyPoints:     out.KeyPoints,
		RelatedTopics: out.RelatedTopics,
	}
	for _, fc := range out.FactCheckResults {
		result.FactChecks = append(result.FactChecks, FactCheck{
			Claim:      fc.Claim,
			Accurate:   fc.Accurate,
			Correction: fc.Correction,
		})
	}
	for _, c := range out.Cards {
		front := strings.TrimSpace(c.Front)
		if front == "" {
			continue
		}
		result.Cards = append(result.Cards, Card{
			Type:  normalizeType(c.Type),
			Front: front,
			Back:  strings.TrimSpace(c.Back),
			Hint:  c.Hint,
		})
	}
	if len(result.Cards) == 0 {
		return nil, ErrNoCards
	}

	s.log.Info("content processed", "category", category, "cards", len(result.Cards),
		"corrections", countCorrections(result.FactChecks))
	return result, nil
}

type questionOutput struct {
	Questions []struct {
		Type          string `json:"type"`
		Front         string `json:"front"`
		Back          string `json:"back"`
		Encouragement string `json:"encouragement"`
	} `json:"questions"`
}

// GenerateQuestions creates practice questions weighted toward the
// learner's weakest recent reviews.
func (s *Service) GenerateQuestions(ctx context.Context, history []ReviewSummary, category string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	if s.cfg.MaxHistory > 0 && len(history) > s.cfg.MaxHistory {
		history = history[:s.cfg.MaxHistory]
	}

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionUserMessage(history, category)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   s.cfg.QuestionMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}

	questions := make([]Question, 0, len(out.Questions))
	for _, q := range out.Questions {
		if strings.TrimSpace(q.Front) == "" {
			continue
		}
		questions = append(questions, Question{
			Type:          normalizeType(q.Type),
			Front:         q.Front,
			Back:          q.Back,
			Encouragement: q.Encouragement,
		})
	}
	return questions, nil
}

type answerOutput struct {
	Answer        string   `json:"answer"`
	References    []string `json:"references"`
	RelatedTopics []string `json:"related_topics"`
}

// AnswerQuery answers a question from the supplied knowledge text, usually
// built with FormatKnowledge.
func (s *Service) AnswerQuery(ctx context.Context, query, knowledge string) (*Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeQuery)

	req := llm.Request{
		System: querySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQueryUserMessage(query, truncate(knowledge, s.cfg.MaxContentChars))},
		},
		Schema:      AnswerSchema,
		MaxTokens:   s.cfg.QueryMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("answer query: %w", err)
	}

	var out answerOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse answer response: %w", err)
	}
	return &Answer{
		Answer:        out.Answer,
		References:    out.References,
		RelatedTopics: out.RelatedTopics,
	}, nil
}

// FormatKnowledge renders cards as prompt context, one per line.
func FormatKnowledge(cards []*store.Card) string {
	var b strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&b, "[#%d] %s => %s\n", c.ID, oneLine(c.Front), oneLine(c.Back))
	}
	return b.String()
}

// ToNewCards converts generated cards for persistence under categoryID.
func ToNewCards(cards []Card, categoryID *int) []store.NewCard {
	out := make([]store.NewCard, len(cards))
	for i, c := range cards {
		nc := store.NewCard{
			CategoryID: categoryID,
			Type:       store.CardType(c.Type),
			Front:      c.Front,
			Back:       c.Back,
		}
		if c.Hint != "" {
			nc.Metadata = map[string]any{"hint": c.Hint}
		}
		out[i] = nc
	}
	return out
}

func normalizeType(t string) string {
	if store.CardType(t).Valid() {
		return t
	}
	return string(store.CardTypeTypeIn)
}

func countCorrections(fcs []FactCheck) int {
	n := 0
	for _, fc := range fcs {
		if !fc.Accurate {
			n++
		}
	}
	return n
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
