package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/docdot/docdot/internal/ui/theme"
)

// BinaryChoice is a horizontal two-option picker for true/false answers.
type BinaryChoice struct {
	TrueLabel  string
	FalseLabel string
	Selected   bool // currently highlighted value
	OnChoose   func(answer bool) tea.Cmd
}

// NewBinaryChoice creates a true/false picker defaulting to true.
func NewBinaryChoice(onChoose func(bool) tea.Cmd) BinaryChoice {
	return BinaryChoice{
		TrueLabel:  "True",
		FalseLabel: "False",
		Selected:   true,
		OnChoose:   onChoose,
	}
}

// Update handles arrow navigation, direct t/f keys, and enter to confirm.
func (c BinaryChoice) Update(msg tea.Msg) (BinaryChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h", "right", "l", "tab":
		c.Selected = !c.Selected
	case "t", "T":
		c.Selected = true
		return c.choose()
	case "f", "F":
		c.Selected = false
		return c.choose()
	case "enter":
		return c.choose()
	}

	return c, nil
}

func (c BinaryChoice) choose() (BinaryChoice, tea.Cmd) {
	if c.OnChoose == nil {
		return c, nil
	}
	return c, c.OnChoose(c.Selected)
}

// View renders the two buttons side by side.
func (c BinaryChoice) View() string {
	render := func(label string, active bool) string {
		if active {
			return theme.ButtonActive.Render(" " + label + " ")
		}
		return theme.ButtonInactive.Render(" " + label + " ")
	}

	var b strings.Builder
	b.WriteString(render(c.TrueLabel, c.Selected))
	b.WriteString("   ")
	b.WriteString(render(c.FalseLabel, !c.Selected))
	return b.String()
}
