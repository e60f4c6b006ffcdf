package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/docdot/docdot/internal/learner"
	"github.com/docdot/docdot/internal/llm"
)

// Config controls answer generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible generation settings for tutoring answers.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// Service answers free-form medical study questions, steering its answers
// toward the learner's weak areas when a state is available.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a study assistant backed by the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Ask answers a single question. The state may be nil for anonymous use.
func (s *Service) Ask(ctx context.Context, state *learner.State, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty")
	}

	req := llm.Request{
		System: buildSystemPrompt(state),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: question},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("assistant answer: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
