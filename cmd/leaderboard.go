package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/docdot/docdot/internal/rank"
	"github.com/docdot/docdot/internal/store"
	"github.com/docdot/docdot/internal/ui/theme"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the accuracy leaderboard and your peer percentile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		category, _ := cmd.Flags().GetString("category")
		limit, _ := cmd.Flags().GetInt("limit")

		userID, err := resolveUser(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		states, err := st.Profiles().All(ctx)
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}

		standings := rank.Standings(states, category)
		if len(standings) == 0 {
			fmt.Println("No learners with answered questions yet.")
			return nil
		}

		heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		you := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

		title := "Leaderboard"
		if category != "" {
			title += " — " + category
		}
		fmt.Println(heading.Render(title))
		fmt.Println()

		for i, entry := range standings {
			if i >= limit {
				break
			}
			marker := "  "
			line := fmt.Sprintf("%2d. %-20s %5.1f%%  (%d/%d)",
				i+1, entry.DisplayName, entry.Accuracy, entry.Correct, entry.Attempts)
			if entry.UserID == userID {
				marker = you.Render("▸ ")
				line = you.Render(line)
			}
			fmt.Println(marker + line)
		}

		// Peer percentile for the current learner.
		for _, state := range states {
			if state.UserID != userID {
				continue
			}
			avg := rank.Averages(states)
			pct := rank.Percentile(state, avg)
			fmt.Println()
			fmt.Println(dim.Render(fmt.Sprintf("You are ahead of ~%.0f%% of your peers.", pct)))
			break
		}

		return nil
	},
}

func init() {
	leaderboardCmd.Flags().String("category", "", "Rank by a single category instead of overall accuracy")
	leaderboardCmd.Flags().Int("limit", 10, "Number of entries to show")
}
