package cmd

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/docdot/docdot/internal/ui/theme"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List questions due for spaced repetition review",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		state, st, err := openState(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		due := state.Schedule.Due(time.Now())
		if len(due) == 0 {
			fmt.Println("Nothing due for review. Keep quizzing to build your schedule.")
			return nil
		}

		heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)

		fmt.Println(heading.Render(fmt.Sprintf("%d question(s) due for review", len(due))))
		fmt.Println()

		questions := st.Questions(newRNG())
		for i, entry := range due {
			text := "(question no longer in bank)"
			category := ""
			if q, err := questions.GetByID(ctx, entry.QuestionID); err == nil && q != nil {
				text = q.Text
				category = q.Category
			}
			fmt.Printf("%2d. %s\n", i+1, text)
			meta := fmt.Sprintf("difficulty %d · interval %d day(s)", entry.Difficulty, entry.IntervalDays)
			if category != "" {
				meta = category + " · " + meta
			}
			fmt.Println("    " + dim.Render(meta))
		}

		fmt.Println()
		fmt.Println(dim.Render("Run `docdot quiz` — due reviews are mixed into your session."))
		return nil
	},
}
