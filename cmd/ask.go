package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docdot/docdot/internal/assistant"
	"github.com/docdot/docdot/internal/learner"
	"github.com/docdot/docdot/internal/llm"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the study assistant a medical question",
	Long:  "Sends your question to the configured LLM provider, tuned toward your weak areas when you have quiz history.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		provider, err := llm.NewProviderFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w\nSet OPENROUTER_API_KEY, ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY", err)
		}

		// History is optional here; answer anonymously if no profile exists.
		var state *learner.State
		if s, st, err := openState(cmd); err == nil {
			state = s
			defer st.Close()
		}

		svc := assistant.NewService(provider, assistant.DefaultConfig())
		answer, err := svc.Ask(ctx, state, strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(answer)
		return nil
	},
}
