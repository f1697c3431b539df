package cardgen

import (
	"fmt"
	"strings"
)

const processSystemPrompt = `You turn study notes into spaced-repetition flashcards.
Check each factual claim and give a correction when it is wrong.
Write atomic cards: one fact per card, short fronts, unambiguous backs.
Mix card types: type_in for recall, reverse for term/definition pairs,
cloze for sentences with a key term hidden as {{c1::term}}.
Keep the summary short and skimmable.`

const questionSystemPrompt = `You write practice questions for a learner using spaced repetition.
Focus on cards they recalled poorly or lapsed on. Vary the card type.
Add one short, genuine encouragement per question.`

const querySystemPrompt = `Answer the question using only the supplied flashcards.
If they do not contain the answer, say so plainly.
Reference the card ids you relied on.`

func buildProcessUserMessage(content, category string) string {
	var b strings.Builder
	if category != "" {
		fmt.Fprintf(&b, "Category: %s\n\n", category)
	}
	b.WriteString("Content:\n")
	b.WriteString(content)
	return b.String()
}

func buildQuestionUserMessage(history []ReviewSummary, category string) string {
	var b strings.Builder
	if category != "" {
		fmt.Fprintf(&b, "Category: %s\n\n", category)
	}
	b.WriteString("Recent reviews (quality 0-5, lower is worse):\n")
	if len(history) == 0 {
		b.WriteString("- none yet\n")
	}
	for _, h := range history {
		fmt.Fprintf(&b, "- %q quality=%d lapses=%d\n", h.Front, h.Quality, h.Lapses)
	}
	return b.String()
}

func buildQueryUserMessage(query, knowledge string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", query)
	b.WriteString("Flashcards:\n")
	if strings.TrimSpace(knowledge) == "" {
		b.WriteString("(none)\n")
	} else {
		b.WriteString(knowledge)
	}
	return b.String()
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
