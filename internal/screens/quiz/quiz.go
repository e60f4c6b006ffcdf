package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/docdot/docdot/internal/learner"
	quizpkg "github.com/docdot/docdot/internal/quiz"
	"github.com/docdot/docdot/internal/router"
	"github.com/docdot/docdot/internal/screen"
	"github.com/docdot/docdot/internal/screens/summary"
	"github.com/docdot/docdot/internal/store"
	"github.com/docdot/docdot/internal/ui/components"
	"github.com/docdot/docdot/internal/ui/layout"
)

// StateSaver persists learner state between answers.
type StateSaver interface {
	Save(ctx context.Context, state *learner.State) error
}

// EventAppender records per-answer events.
type EventAppender interface {
	Append(ctx context.Context, data store.AnswerEventData) error
}

// Deps bundles everything a quiz session needs.
type Deps struct {
	State     *learner.State
	Engine    *learner.Engine
	Selector  *quizpkg.Selector
	Profiles  StateSaver
	Answers   EventAppender
	Logger    *zap.Logger
	SessionID string
}

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseEmpty
	phaseError
)

// Screen runs an interactive quiz session for one category.
type Screen struct {
	deps     Deps
	category string

	phase    phase
	question *quizpkg.Question
	shownAt  time.Time
	choice   components.BinaryChoice
	spinner  components.Spinner
	feedback learner.Result
	errMsg   string

	tally summary.Tally
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a quiz session screen. Use quizpkg.AllCategories to draw
// from the whole bank.
func New(deps Deps, category string) *Screen {
	s := &Screen{
		deps:     deps,
		category: category,
		phase:    phaseLoading,
		tally:    summary.Tally{Category: category, StartedAt: time.Now()},
	}
	s.choice = components.NewBinaryChoice(s.answer)
	s.spinner = components.NewSpinner("Picking a question...")
	return s
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Init(), s.nextQuestion())
}

func (s *Screen) Title() string {
	if s.category == quizpkg.AllCategories {
		return "Quiz"
	}
	return "Quiz · " + s.category
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "T/F", Description: "Answer"},
			{Key: "←→", Description: "Switch"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "End session"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "End session"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case persistDoneMsg:
		if msg.Err != nil {
			s.deps.Logger.Error("save answer outcome",
				zap.String("user_id", s.deps.State.UserID),
				zap.Error(msg.Err))
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseLoading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseQuestion:
		if key == "esc" {
			return s, s.finish()
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd

	case phaseFeedback:
		switch key {
		case "esc", "q":
			return s, s.finish()
		case "enter", " ", "n":
			s.phase = phaseLoading
			return s, tea.Batch(s.spinner.Init(), s.nextQuestion())
		}

	case phaseEmpty, phaseError:
		if key == "esc" || key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

func (s *Screen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseError
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Question == nil {
		if s.tally.Answered > 0 {
			return s, s.finish()
		}
		s.phase = phaseEmpty
		return s, nil
	}

	s.question = msg.Question
	s.shownAt = time.Now()
	s.choice = components.NewBinaryChoice(s.answer)
	s.phase = phaseQuestion
	return s, nil
}

// nextQuestion asks the selector for a due review or a fresh draw.
func (s *Screen) nextQuestion() tea.Cmd {
	deps := s.deps
	category := s.category
	return func() tea.Msg {
		q, err := deps.Selector.Next(context.Background(), deps.State, category, time.Now())
		return questionReadyMsg{Question: q, Err: err}
	}
}

// answer records the learner's response and moves to feedback.
func (s *Screen) answer(given bool) tea.Cmd {
	elapsed := time.Since(s.shownAt)

	ev := learner.Event{
		QuestionID:      s.question.ID,
		Category:        s.question.Category,
		QuestionText:    s.question.Text,
		Expected:        s.question.Answer,
		Given:           given,
		ResponseSeconds: elapsed.Seconds(),
	}

	s.feedback = s.deps.Engine.RecordAnswer(s.deps.State, ev, time.Now())
	s.phase = phaseFeedback

	s.tally.Answered++
	if s.feedback.Correct {
		s.tally.Correct++
	}
	s.tally.XPGained += s.feedback.XPEarned
	s.tally.NewBadges = append(s.tally.NewBadges, s.feedback.NewBadges...)
	if s.feedback.LeveledUp {
		s.tally.LeveledUp = true
	}

	return s.persist(ev, elapsed)
}

// persist saves the learner state and appends the answer event off the
// UI loop. Failures are logged, never surfaced mid-session.
func (s *Screen) persist(ev learner.Event, elapsed time.Duration) tea.Cmd {
	deps := s.deps
	isReview := s.question.IsReview
	correct := s.feedback.Correct
	return func() tea.Msg {
		ctx := context.Background()
		if err := deps.Profiles.Save(ctx, deps.State); err != nil {
			return persistDoneMsg{Err: err}
		}
		err := deps.Answers.Append(ctx, store.AnswerEventData{
			UserID:     deps.State.UserID,
			SessionID:  deps.SessionID,
			QuestionID: ev.QuestionID,
			Category:   ev.Category,
			Correct:    correct,
			IsReview:   isReview,
			ResponseMs: int(elapsed.Milliseconds()),
		})
		return persistDoneMsg{Err: err}
	}
}

// finish replaces this screen with the session summary.
func (s *Screen) finish() tea.Cmd {
	s.tally.Duration = time.Since(s.tally.StartedAt)
	sum := summary.New(s.tally, s.deps.State, s.deps.Engine)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
}
