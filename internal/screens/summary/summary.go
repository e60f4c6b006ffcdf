package summary

import (
	"fmt"
	"strings"
	"time"

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

// Tally accumulates per-session results shown on the summary screen.
type Tally struct {
	Category  string
	Answered  int
	Correct   int
	XPGained  int
	NewBadges []string
	LeveledUp bool
	StartedAt time.Time
	Duration  time.Duration
}

// Accuracy returns the session hit rate in [0, 1].
func (t Tally) Accuracy() float64 {
	if t.Answered == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Answered)
}

// Screen displays the end-of-session summary.
type Screen struct {
	tally  Tally
	state  *learner.State
	engine *learner.Engine
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a summary screen for a finished session.
func New(tally Tally, state *learner.State, engine *learner.Engine) *Screen {
	return &Screen{tally: tally, state: state, engine: engine}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Session Summary"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	t := s.tally

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(t.Duration.Minutes())
	secs := int(t.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		t.Answered, t.Correct, t.Accuracy()*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(fmt.Sprintf("✦ +%d XP earned", t.XPGained)))
	b.WriteString("\n")

	if t.LeveledUp {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render(fmt.Sprintf("⬆ Reached level %d!", s.state.Stats.Level)))
		b.WriteString("\n")
	}

	for _, badge := range t.NewBadges {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%s %s", gamify.BadgeIcon(badge), badge)))
		b.WriteString("\n")
	}

	// Progress toward the next level.
	b.WriteString("\n")
	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", s.state.Stats.Level),
		s.engine.LevelProgress(s.state),
		true,
		min(width-8, 50),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	return b.String()
}
