package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/spacedrep"
)

var reviewCmd = &cobra.Command{
	Use:   "review <card-id> <quality>",
	Short: "Grade a card 0-5 and reschedule it",
	Long: "Grade a card and reschedule it with SM-2.\n\n" +
		"  0 blackout   1 wrong   2 almost   3 hard   4 good   5 easy\n\n" +
		"Grades below 3 count as a lapse. Use --preview to see what each grade would do.",
	Args: cobra.RangeArgs(1, 2),
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
		svc := e.reviewService(nil)
		out := cmd.OutOrStdout()

		if preview, _ := cmd.Flags().GetBool("preview"); preview || len(args) == 1 {
			proj, err := svc.Preview(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-9s  %8s  %5s  %s\n", "Grade", "Interval", "Ease", "Next review")
			for _, p := range proj {
				fmt.Fprintf(out, "%d %-7s  %7dd  %5.2f  %s\n",
					int(p.Quality), p.Quality.Label(), p.Interval, p.EaseFactor, p.NextReview.Local().Format("Mon Jan 2"))
			}
			return nil
		}

		q, err := parseQuality(args[1])
		if err != nil {
			return err
		}
		session, _ := cmd.Flags().GetString("session")
		res, err := svc.Submit(cmd.Context(), id, q, session)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(out).Encode(map[string]any{
				"card_id":  res.CardID,
				"quality":  int(res.Quality),
				"previous": res.Previous,
				"next":     res.Next,
			})
		}
		printResult(cmd, res)
		return nil
	},
}

func init() {
	reviewCmd.Flags().Bool("preview", false, "Show the outcome of every grade without saving")
	reviewCmd.Flags().String("session", "", "Session id to record with the review")
	reviewCmd.Flags().Bool("json", false, "Print the result as JSON")
}

// parseQuality accepts integer grades only; "3.5" is rejected, not rounded.
func parseQuality(s string) (spacedrep.Quality, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", spacedrep.ErrInvalidQuality, s)
	}
	return spacedrep.QualityFromFloat(v)
}

func printResult(cmd *cobra.Command, res *review.Result) {
	out := cmd.OutOrStdout()
	verdict := "recalled"
	if !res.Quality.Passed() {
		verdict = "lapsed"
	}
	fmt.Fprintf(out, "card %d graded %d (%s), %s\n", res.CardID, int(res.Quality), res.Quality.Label(), verdict)
	fmt.Fprintf(out, "  interval  %d -> %d days\n", res.Previous.Interval, res.Next.Interval)
	fmt.Fprintf(out, "  ease      %.2f -> %.2f\n", res.Previous.EaseFactor, res.Next.EaseFactor)
	if res.Next.NextReview != nil {
		fmt.Fprintf(out, "  next      %s\n", res.Next.NextReview.Local().Format("Mon Jan 2 2006 15:04"))
	}
}
