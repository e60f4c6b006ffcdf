package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizpkg "github.com/docdot/docdot/internal/quiz"
	"github.com/docdot/docdot/internal/router"
	"github.com/docdot/docdot/internal/screen"
	quizscreen "github.com/docdot/docdot/internal/screens/quiz"
	"github.com/docdot/docdot/internal/ui/components"
	"github.com/docdot/docdot/internal/ui/layout"
)

// categoryScreen lets the learner pick a category before starting a quiz.
type categoryScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*categoryScreen)(nil)
var _ screen.KeyHintProvider = (*categoryScreen)(nil)

func newCategoryScreen(deps Deps) *categoryScreen {
	start := func(category string) func() tea.Cmd {
		return func() tea.Cmd {
			// Replace so finishing the quiz lands back on home, not here.
			next := quizscreen.New(deps.Quiz, category)
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}

	items := []components.MenuItem{
		{Label: quizpkg.AllCategories, Action: start(quizpkg.AllCategories)},
	}
	for _, name := range deps.Categories.Names() {
		items = append(items, components.MenuItem{Label: name, Action: start(name)})
	}

	return &categoryScreen{menu: components.NewMenu(items)}
}

func (c *categoryScreen) Init() tea.Cmd {
	return nil
}

func (c *categoryScreen) Title() string {
	return "Choose Category"
}

func (c *categoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *categoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *categoryScreen) View(width, height int) string {
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, c.menu.View())
}
