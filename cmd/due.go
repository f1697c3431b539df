package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/spacedrep"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List the cards due for review, most urgent first",
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
		req := review.DueRequest{CategoryID: categoryIDOf(cat)}
		if cmd.Flags().Changed("limit") {
			n, _ := cmd.Flags().GetInt("limit")
			req.Limit = &n
		}

		svc := e.reviewService(nil)
		due, err := svc.Due(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			ids := make([]int, len(due))
			for i, d := range due {
				ids[i] = d.Card.ID
			}
			return json.NewEncoder(out).Encode(map[string]any{"card_ids": ids, "count": len(ids)})
		}

		if len(due) == 0 {
			fmt.Fprintln(out, "Nothing due.")
			return nil
		}

		fmt.Fprintf(out, "%-6s  %-8s  %-5s  %-9s  %s\n", "ID", "Status", "Ease", "Overdue", "Front")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, d := range due {
			overdue := ""
			if d.Status == spacedrep.ReviewOverdue {
				overdue = strconv.FormatFloat(d.OverdueDays, 'f', 1, 64) + "d"
			}
			fmt.Fprintf(out, "%-6d  %-8s  %-5.2f  %-9s  %s\n",
				d.Card.ID, d.Status, d.Card.State.EaseFactor, overdue, truncate(oneLine(d.Card.Front), 44))
		}
		fmt.Fprintf(out, "\n%d due as of %s\n", len(due), svc.Now().Local().Format(time.DateTime))
		return nil
	},
}

func init() {
	dueCmd.Flags().StringP("category", "c", "", "Only cards in this category (name or id)")
	dueCmd.Flags().IntP("limit", "n", 0, "Maximum cards to list (default from config)")
	dueCmd.Flags().Bool("json", false, "Print card ids as JSON")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
