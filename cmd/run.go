package cmd

import (
	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/app"
	"github.com/smartanki/smartanki/internal/review"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Review due cards in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

func init() {
	studyCmd.Flags().StringP("category", "c", "", "Only study this category (name or id)")
	studyCmd.Flags().IntP("limit", "n", 0, "Maximum cards in the session (0 = configured default)")
}

// runApp opens the store and launches the TUI, on the home screen or
// straight into a study session.
func runApp(cmd *cobra.Command, studyNow bool) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	var due review.DueRequest
	if cmd.Flags().Lookup("category") != nil {
		ref, _ := cmd.Flags().GetString("category")
		cat, err := resolveCategory(cmd, e.store.CategoryRepo(), ref)
		if err != nil {
			return err
		}
		due.CategoryID = categoryIDOf(cat)

		if n, _ := cmd.Flags().GetInt("limit"); n > 0 {
			due.Limit = &n
		}
	}

	return app.Run(app.Options{
		Review:   e.reviewService(nil),
		Events:   e.store.EventRepo(),
		Due:      due,
		StudyNow: studyNow,
	})
}
