package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/docdot/docdot/internal/gamify"
	"github.com/docdot/docdot/internal/learner"
	"github.com/docdot/docdot/internal/llm"
)

func TestAskTrimsAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  The radial nerve.  \n"})
	svc := NewService(mock, DefaultConfig())

	answer, err := svc.Ask(context.Background(), nil, "Which nerve runs in the spiral groove?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "The radial nerve." {
		t.Errorf("answer = %q", answer)
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Ask(context.Background(), nil, "   "); err == nil {
		t.Fatal("expected error for blank question")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for a blank question", mock.CallCount())
	}
}

func TestAskIncludesWeakAreasInSystemPrompt(t *testing.T) {
	state := learner.NewState("u1", "u1")
	state.Stats.CategoryStats["Anatomy"] = &gamify.CategoryStat{Attempts: 10, Correct: 3}
	state.Stats.CategoryStats["Physiology"] = &gamify.CategoryStat{Attempts: 10, Correct: 9}

	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Ask(context.Background(), state, "Explain cardiac preload."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	system := mock.Calls[0].System
	if !strings.Contains(system, "Weak areas: Anatomy (30.0%)") {
		t.Errorf("system prompt missing weak areas:\n%s", system)
	}
	if !strings.Contains(system, "Strong areas: Physiology (90.0%)") {
		t.Errorf("system prompt missing strong areas:\n%s", system)
	}
}

func TestAskAnonymousUsesBasePrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Ask(context.Background(), nil, "What is preload?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(mock.Calls[0].System, "Student context") {
		t.Error("anonymous ask should not carry student context")
	}
}
