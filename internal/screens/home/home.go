package home

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docdot/docdot/internal/config"
	quizpkg "github.com/docdot/docdot/internal/quiz"
	"github.com/docdot/docdot/internal/router"
	"github.com/docdot/docdot/internal/screen"
	quizscreen "github.com/docdot/docdot/internal/screens/quiz"
	"github.com/docdot/docdot/internal/screens/stats"
	"github.com/docdot/docdot/internal/ui/components"
	"github.com/docdot/docdot/internal/ui/theme"
)

// Deps bundles what the home screen needs to launch the other screens.
type Deps struct {
	Quiz       quizscreen.Deps
	Categories config.Taxonomy
}

// Screen is the landing screen with the main navigation menu.
type Screen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen.
func New(deps Deps) *Screen {
	s := &Screen{deps: deps}
	s.menu = components.NewMenu(s.buildMenu())
	return s
}

func (s *Screen) buildMenu() []components.MenuItem {
	due := len(s.deps.Quiz.State.Schedule.Due(time.Now()))
	dueHint := ""
	if due > 0 {
		dueHint = fmt.Sprintf("%d due", due)
	}

	return []components.MenuItem{
		{
			Label: "Quick Quiz",
			Hint:  dueHint,
			Action: func() tea.Cmd {
				return push(quizscreen.New(s.deps.Quiz, quizpkg.AllCategories))
			},
		},
		{
			Label: "Quiz by Category",
			Action: func() tea.Cmd {
				return push(newCategoryScreen(s.deps))
			},
		},
		{
			Label: "My Stats",
			Action: func() tea.Cmd {
				return push(stats.New(s.deps.Quiz.State, s.deps.Quiz.Engine))
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}
}

func push(next screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Home"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var greeting string
	name := s.deps.Quiz.State.DisplayName
	if name == "" {
		name = s.deps.Quiz.State.UserID
	}
	greeting = fmt.Sprintf("Welcome back, %s", name)

	banner := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(renderBanner())

	sub := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(greeting)

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())

	return "\n" + banner + "\n" + sub + "\n\n" + menu
}
