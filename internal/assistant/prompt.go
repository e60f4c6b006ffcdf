package assistant

import (
	"fmt"
	"strings"

	"github.com/docdot/docdot/internal/learner"
)

const baseSystemPrompt = `You are a concise medical tutor helping a student prepare for preclinical exams. Answer the student's question accurately and briefly. Prefer high-yield facts, mnemonics, and clinical correlations. If the question is ambiguous, answer the most likely exam-relevant interpretation. Use plain text, no markdown tables.`

func buildSystemPrompt(state *learner.State) string {
	if state == nil {
		return baseSystemPrompt
	}

	insights := learner.BuildInsights(state)
	if len(insights.Weaknesses) == 0 && len(insights.Strengths) == 0 {
		return baseSystemPrompt
	}

	var b strings.Builder
	b.WriteString(baseSystemPrompt)
	b.WriteString("\n\nStudent context:\n")

	if len(insights.Weaknesses) > 0 {
		b.WriteString(fmt.Sprintf("Weak areas: %s\n", strings.Join(insights.Weaknesses, ", ")))
		b.WriteString("When relevant, reinforce fundamentals in these areas.\n")
	}
	if len(insights.Strengths) > 0 {
		b.WriteString(fmt.Sprintf("Strong areas: %s\n", strings.Join(insights.Strengths, ", ")))
	}

	return b.String()
}
