package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docdot/docdot/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with Docdot styling.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a themed loading spinner with an optional label.
func NewSpinner(label string) Spinner {
	m := spinner.New()
	m.Spinner = spinner.Dot
	m.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Spinner{Model: m, Label: label}
}

// Init starts the tick loop.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner and label.
func (s Spinner) View() string {
	view := s.Model.View()
	if s.Label != "" {
		view += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
	}
	return view
}
