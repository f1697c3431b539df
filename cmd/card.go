package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/store"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage flashcards",
}

var cardAddCmd = &cobra.Command{
	Use:   "add <front> <back>",
	Short: "Create a card",
	Args:  cobra.ExactArgs(2),
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
		typ, _ := cmd.Flags().GetString("type")
		nc := store.NewCard{
			CategoryID: categoryIDOf(cat),
			Type:       store.CardType(typ),
			Front:      args[0],
			Back:       args[1],
		}
		if hint, _ := cmd.Flags().GetString("hint"); hint != "" {
			nc.Metadata = map[string]any{"hint": hint}
		}

		c, err := e.store.CardRepo().Create(cmd.Context(), nc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created card %d\n", c.ID)
		return nil
	},
}

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards",
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
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		cards, err := e.store.CardRepo().List(cmd.Context(), store.CardFilter{
			CategoryID: categoryIDOf(cat),
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(cards) == 0 {
			fmt.Fprintln(out, "No cards.")
			return nil
		}
		now := e.reviewService(nil).Now()
		fmt.Fprintf(out, "%-6s  %-8s  %-8s  %4s  %-30s  %s\n", "ID", "Type", "Status", "Ivl", "Front", "Back")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, c := range cards {
			fmt.Fprintf(out, "%-6d  %-8s  %-8s  %3dd  %-30s  %s\n",
				c.ID, c.Type, c.State.Status(now), c.State.Interval,
				truncate(oneLine(c.Front), 30), truncate(oneLine(c.Back), 30))
		}
		return nil
	},
}

var cardShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a card and its review history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "card")
		if err != nil {
			return err
		}
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		c, err := e.store.CardRepo().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("card %d: %w", id, err)
		}
		svc := e.reviewService(nil)
		history, err := svc.History(cmd.Context(), id, 0)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"card": c, "reviews": history})
		}

		fmt.Fprintf(out, "ID:        %d\n", c.ID)
		fmt.Fprintf(out, "Type:      %s\n", c.Type)
		if c.CategoryID != nil {
			fmt.Fprintf(out, "Category:  %d\n", *c.CategoryID)
		}
		fmt.Fprintf(out, "Front:     %s\n", c.Front)
		fmt.Fprintf(out, "Back:      %s\n", c.Back)
		if hint, ok := c.Metadata["hint"].(string); ok {
			fmt.Fprintf(out, "Hint:      %s\n", hint)
		}
		fmt.Fprintf(out, "Status:    %s\n", c.State.Status(svc.Now()))
		fmt.Fprintf(out, "Ease:      %.2f\n", c.State.EaseFactor)
		fmt.Fprintf(out, "Interval:  %d days\n", c.State.Interval)
		if c.State.NextReview != nil {
			next := c.State.NextReview.Local().Format("2006-01-02 15:04")
			switch days := c.State.DaysUntilReview(svc.Now()); {
			case days == 1:
				next += " (in 1 day)"
			case days > 1:
				next += fmt.Sprintf(" (in %d days)", days)
			}
			fmt.Fprintf(out, "Next:      %s\n", next)
		}
		fmt.Fprintf(out, "Reviews:   %d (%d lapses)\n", c.ReviewCount, c.LapseCount)

		if len(history) > 0 {
			fmt.Fprintln(out)
			for _, r := range history {
				fmt.Fprintf(out, "  %s  q%d  %dd -> %dd  ease %.2f -> %.2f\n",
					r.Timestamp.Local().Format("2006-01-02 15:04"), r.Quality,
					r.IntervalBefore, r.IntervalAfter, r.EaseBefore, r.EaseAfter)
			}
		}
		return nil
	},
}

var cardRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a card (its review history is kept)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "card")
		if err != nil {
			return err
		}
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.CardRepo().Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("card %d: %w", id, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted card %d\n", id)
		return nil
	},
}

func init() {
	cardAddCmd.Flags().StringP("category", "c", "", "Category name or id")
	cardAddCmd.Flags().StringP("type", "t", string(store.CardTypeTypeIn), "Card type: type_in, reverse or cloze")
	cardAddCmd.Flags().String("hint", "", "Optional hint shown with the answer")

	cardListCmd.Flags().StringP("category", "c", "", "Only cards in this category (name or id)")
	cardListCmd.Flags().IntP("limit", "n", 50, "Maximum cards to list (0 = all)")
	cardListCmd.Flags().Int("offset", 0, "Skip this many cards")

	cardShowCmd.Flags().Bool("json", false, "Print as JSON")

	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardShowCmd)
	cardCmd.AddCommand(cardRmCmd)
}
