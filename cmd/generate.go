package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/cardgen"
	"github.com/smartanki/smartanki/internal/llm"
	"github.com/smartanki/smartanki/internal/store"
)

var errNoProvider = errors.New("no LLM provider configured: set GEMINI_API_KEY, OPENAI_API_KEY, " +
	"ANTHROPIC_API_KEY or OPENROUTER_API_KEY, or SMARTANKI_LLM_PROVIDER with its key")

// newCardGen builds the card generation service from the environment.
func newCardGen(cmd *cobra.Command, e *env) (*cardgen.Service, error) {
	provider, err := llm.NewProviderFromEnv(cmd.Context(), e.store.EventRepo(), e.log)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	if provider == nil {
		return nil, errNoProvider
	}
	return cardgen.NewService(provider, cardgen.DefaultConfig(), e.log), nil
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fact-check notes and turn them into cards with an LLM",
	Long: "Reads notes from --file (or stdin with --file -), asks the configured LLM to\n" +
		"fact-check them and write flashcards, and saves the cards unless --dry-run is set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		content, err := readInput(cmd, path)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		ref, _ := cmd.Flags().GetString("category")
		cat, err := resolveCategory(cmd, e.store.CategoryRepo(), ref)
		if err != nil {
			return err
		}
		categoryName := ""
		if cat != nil {
			categoryName = cat.Name
		}

		gen, err := newCardGen(cmd, e)
		if err != nil {
			return err
		}
		res, err := gen.ProcessContent(cmd.Context(), content, categoryName)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Summary: %s\n", res.Summary)
		for _, fc := range res.FactChecks {
			if !fc.Accurate {
				fmt.Fprintf(out, "  ! %s\n    -> %s\n", fc.Claim, fc.Correction)
			}
		}
		fmt.Fprintln(out)
		for i, c := range res.Cards {
			fmt.Fprintf(out, "%2d. [%s] %s\n    %s\n", i+1, c.Type, c.Front, c.Back)
		}
		if len(res.RelatedTopics) > 0 {
			fmt.Fprintf(out, "\nRelated: %s\n", strings.Join(res.RelatedTopics, ", "))
		}

		if dry, _ := cmd.Flags().GetBool("dry-run"); dry {
			return nil
		}
		saved, err := e.store.CardRepo().CreateBulk(cmd.Context(), cardgen.ToNewCards(res.Cards, categoryIDOf(cat)))
		if err != nil {
			return fmt.Errorf("save cards: %w", err)
		}
		fmt.Fprintf(out, "\nsaved %d cards\n", len(saved))
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question from your cards",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		ref, _ := cmd.Flags().GetString("category")
		cat, err := resolveCategory(cmd, e.store.CategoryRepo(), ref)
		if err != nil {
			return err
		}
		cards, err := e.store.CardRepo().List(cmd.Context(), store.CardFilter{CategoryID: categoryIDOf(cat), Limit: 200})
		if err != nil {
			return err
		}

		gen, err := newCardGen(cmd, e)
		if err != nil {
			return err
		}
		ans, err := gen.AnswerQuery(cmd.Context(), strings.Join(args, " "), cardgen.FormatKnowledge(cards))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ans.Answer)
		if len(ans.References) > 0 {
			fmt.Fprintf(out, "\nCards: %s\n", strings.Join(ans.References, ", "))
		}
		if len(ans.RelatedTopics) > 0 {
			fmt.Fprintf(out, "Related: %s\n", strings.Join(ans.RelatedTopics, ", "))
		}
		return nil
	},
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Generate practice questions aimed at your weakest recent reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		recent, err := e.store.EventRepo().RecentReviews(ctx, store.QueryOpts{Limit: cardgen.DefaultConfig().MaxHistory})
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			return errors.New("no reviews yet: study some cards first")
		}

		history := make([]cardgen.ReviewSummary, 0, len(recent))
		fronts := make(map[int]*store.Card)
		for _, r := range recent {
			c, ok := fronts[r.CardID]
			if !ok {
				c, err = e.store.CardRepo().Get(ctx, r.CardID)
				if errors.Is(err, store.ErrNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				fronts[r.CardID] = c
			}
			history = append(history, cardgen.ReviewSummary{Front: c.Front, Quality: r.Quality, Lapses: c.LapseCount})
		}

		ref, _ := cmd.Flags().GetString("category")
		gen, err := newCardGen(cmd, e)
		if err != nil {
			return err
		}
		qs, err := gen.GenerateQuestions(ctx, history, ref)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, q := range qs {
			fmt.Fprintf(out, "%d. %s\n   answer: %s\n", i+1, q.Front, q.Back)
			if q.Encouragement != "" {
				fmt.Fprintf(out, "   %s\n", q.Encouragement)
			}
		}
		return nil
	},
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	switch path {
	case "":
		return "", errors.New("--file is required (use - for stdin)")
	case "-":
		b, err = io.ReadAll(cmd.InOrStdin())
	default:
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "Notes file, or - for stdin")
	generateCmd.Flags().StringP("category", "c", "", "Category for the new cards (name or id)")
	generateCmd.Flags().Bool("dry-run", false, "Print the cards without saving them")

	askCmd.Flags().StringP("category", "c", "", "Only use cards from this category (name or id)")

	practiceCmd.Flags().StringP("category", "c", "", "Topic hint for the questions")
}
