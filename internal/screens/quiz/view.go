package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/docdot/docdot/internal/gamify"
	"github.com/docdot/docdot/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spinner.View())
	case phaseQuestion:
		return s.renderQuestion(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	case phaseEmpty:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions available for this category.\n  Import a question bank with: docdot import <file>")
	default:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
}

func (s *Screen) renderQuestion(width int) string {
	q := s.question

	var b strings.Builder

	// Info line: category on the left, session tally on the right.
	topic := q.Category
	if q.Subcategory != "" {
		topic += " · " + q.Subcategory
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + topic)
	if q.IsReview {
		infoLeft += "  " + theme.Review.Render("⟳ review")
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d   ✓ %d", s.tally.Answered+1, s.tally.Correct))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Statement, judged true or false.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	return b.String()
}

func (s *Screen) renderFeedback(width int) string {
	var b strings.Builder

	verdict := theme.Incorrect.Render("✗ Incorrect")
	if s.feedback.Correct {
		verdict = theme.Correct.Render("✓ Correct!")
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(verdict))
	b.WriteString("\n\n")

	answer := "False"
	if s.question.Answer {
		answer = "True"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("The statement is %s.", answer)))
	b.WriteString("\n")

	if s.question.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.question.Explanation))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	xpLine := fmt.Sprintf("+%d XP", s.feedback.XPEarned)
	if streak := s.deps.State.Stats.Streak; s.feedback.Correct && streak > 1 {
		xpLine += fmt.Sprintf("   streak ×%d", streak)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(xpLine))
	b.WriteString("\n")

	if s.feedback.Review != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Next review in %d day(s)", s.feedback.Review.IntervalDays)))
		b.WriteString("\n")
	}

	if s.feedback.LeveledUp {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render(fmt.Sprintf("⬆ Level up! You are now level %d", s.deps.State.Stats.Level)))
		b.WriteString("\n")
	}

	for _, badge := range s.feedback.NewBadges {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%s New badge: %s", gamify.BadgeIcon(badge), badge)))
		b.WriteString("\n")
	}

	return b.String()
}
