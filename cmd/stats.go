package cmd

import (
	"fmt"
	"sort"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/docdot/docdot/internal/gamify"
	"github.com/docdot/docdot/internal/learner"
	"github.com/docdot/docdot/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics and insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		state, st, err := openState(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		engine := learner.NewEngine(cfg)
		s := state.Stats

		heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)

		fmt.Println(heading.Render(fmt.Sprintf("%s — Level %d", state.DisplayName, s.Level)))
		fmt.Println(dim.Render(fmt.Sprintf("%d XP · %d XP to next level", s.XPPoints, engine.NextLevelXP(state))))
		fmt.Println()
		fmt.Printf("Attempts:      %d\n", s.TotalAttempts)
		fmt.Printf("Correct:       %d (%.1f%%)\n", s.CorrectAnswers, s.Accuracy())
		fmt.Printf("Streak:        %d (best %d)\n", s.Streak, s.MaxStreak)
		fmt.Printf("Daily streak:  %d day(s)\n", s.DailyStreak)
		fmt.Printf("Study days:    %d\n", len(s.StudyDays))

		if badges := s.Badges.Values(); len(badges) > 0 {
			fmt.Println()
			fmt.Println(heading.Render("Badges"))
			for _, badge := range badges {
				fmt.Printf("  %s %s\n", gamify.BadgeIcon(badge), badge)
			}
		}

		if achievements := s.Achievements(); len(achievements) > 0 {
			fmt.Println()
			fmt.Println(heading.Render("Achievements"))
			for _, a := range achievements {
				fmt.Printf("  🏆 %s\n", a)
			}
		}

		if len(s.CategoryStats) > 0 {
			fmt.Println()
			fmt.Println(heading.Render("Categories"))
			names := make([]string, 0, len(s.CategoryStats))
			for name := range s.CategoryStats {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				cs := s.CategoryStats[name]
				acc := 0.0
				if cs.Attempts > 0 {
					acc = float64(cs.Correct) / float64(cs.Attempts) * 100
				}
				fmt.Printf("  %-28s %4d attempts  %5.1f%%\n", name, cs.Attempts, acc)
			}
		}

		insights := learner.BuildInsights(state)
		if len(insights.Strengths)+len(insights.Weaknesses)+len(insights.Recommendations) > 0 {
			fmt.Println()
			fmt.Println(heading.Render("Insights"))
			for _, str := range insights.Strengths {
				fmt.Println("  " + theme.Correct.Render("▲") + " " + str)
			}
			for _, weak := range insights.Weaknesses {
				fmt.Println("  " + theme.Incorrect.Render("▼") + " " + weak)
			}
			for _, rec := range insights.Recommendations {
				fmt.Println("  " + dim.Render("→ "+rec))
			}
		}

		return nil
	},
}
