package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docdot/docdot/internal/gamify"
	"github.com/docdot/docdot/internal/learner"
	"github.com/docdot/docdot/internal/router"
	"github.com/docdot/docdot/internal/screen"
	"github.com/docdot/docdot/internal/ui/components"
	"github.com/docdot/docdot/internal/ui/layout"
	"github.com/docdot/docdot/internal/ui/theme"
)

// Screen shows the learner's overall progress and insights.
type Screen struct {
	state  *learner.State
	engine *learner.Engine
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a stats screen.
func New(state *learner.State, engine *learner.Engine) *Screen {
	return &Screen{state: state, engine: engine}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "My Stats"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	st := s.state.Stats

	var b strings.Builder
	line := func(text string) {
		b.WriteString("  " + text + "\n")
	}
	heading := func(text string) {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(text) + "\n")
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", st.Level),
		s.engine.LevelProgress(s.state),
		true,
		min(width-8, 50),
	)
	b.WriteString("\n  " + bar.View() + "\n")
	line(theme.Hint.Render(fmt.Sprintf("%d XP · %d XP to next level", st.XPPoints, s.engine.NextLevelXP(s.state))))

	heading("Performance")
	line(fmt.Sprintf("Attempts: %d   Correct: %d   Accuracy: %.1f%%",
		st.TotalAttempts, st.CorrectAnswers, st.Accuracy()))
	line(fmt.Sprintf("Streak: %d (best %d)   Daily streak: %d day(s)",
		st.Streak, st.MaxStreak, st.DailyStreak))

	if len(st.Badges) > 0 {
		heading("Badges")
		badges := st.Badges.Values()
		for _, badge := range badges {
			line(fmt.Sprintf("%s %s", gamify.BadgeIcon(badge), badge))
		}
	}

	if len(st.CategoryStats) > 0 {
		heading("Categories")
		names := make([]string, 0, len(st.CategoryStats))
		for name := range st.CategoryStats {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cs := st.CategoryStats[name]
			acc := 0.0
			if cs.Attempts > 0 {
				acc = float64(cs.Correct) / float64(cs.Attempts) * 100
			}
			line(fmt.Sprintf("%-28s %3d attempts   %5.1f%%", name, cs.Attempts, acc))
		}
	}

	insights := learner.BuildInsights(s.state)
	if len(insights.Strengths)+len(insights.Weaknesses)+len(insights.Recommendations) > 0 {
		heading("Insights")
		for _, str := range insights.Strengths {
			line(theme.Correct.Render("▲ ") + str)
		}
		for _, weak := range insights.Weaknesses {
			line(theme.Incorrect.Render("▼ ") + weak)
		}
		for _, rec := range insights.Recommendations {
			line(theme.Hint.Render("→ " + rec))
		}
	}

	return b.String()
}
