package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/spacedrep"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection and review statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		st, err := e.reviewService(nil).Stats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Cards:         %d (%d new, %d due)\n", st.TotalCards, st.NewCards, st.DueCards)
		fmt.Fprintf(out, "Reviews:       %d (%d lapses)\n", st.TotalReviews, st.Lapses)
		if st.TotalReviews > 0 {
			fmt.Fprintf(out, "Avg ease:      %.2f\n", st.AvgEaseFactor)
			fmt.Fprintf(out, "Avg interval:  %.1f days\n", st.AvgIntervalDay)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Grades")
			fmt.Fprintln(out, strings.Repeat("─", 40))
			for q := spacedrep.QualityBlackout; q <= spacedrep.QualityPerfect; q++ {
				n := st.ByQuality[int(q)]
				bar := strings.Repeat("█", n*24/max(st.TotalReviews, 1))
				fmt.Fprintf(out, "%d %-8s  %5d  %s\n", int(q), q.Label(), n, bar)
			}
		}
		return nil
	},
}
