package cardgen

// Card is a generated flashcard, not yet persisted.
type Card struct {
	Type  string // "type_in", "reverse" or "cloze"
	Front string
	Back  string
	Hint  string // cloze hint, optional
}

// FactCheck is one claim from the source content and its verdict.
type FactCheck struct {
	Claim      string
	Accurate   bool
	Correction string
}

// ProcessedContent is the result of turning raw notes into study material.
type ProcessedContent struct {
	FactChecks    []FactCheck
	Cards         []Card
	Summary       string
	KeyPoints     []string
	RelatedTopics []string
}

// ReviewSummary is one past review fed to question generation.
type ReviewSummary struct {
	Front   string
	Quality int
	Lapses  int
}

// Question is a personalised practice question.
type Question struct {
	Type          string
	Front         string
	Back          string
	Encouragement string
}

// Answer is a response to a free-form query against stored cards.
type Answer struct {
	Answer        string
	References    []string
	RelatedTopics []string
}
