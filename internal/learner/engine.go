package learner

import (
	"time"

	"github.com/docdot/docdot/internal/analytics"
	"github.com/docdot/docdot/internal/config"
	"github.com/docdot/docdot/internal/gamify"
)

// Engine turns answer events into learner state changes. It composes the
// gamification engine, the analytics aggregator, and the scheduling
// policy; all three see each event exactly once, in a fixed order.
type Engine struct {
	cfg        config.Config
	gamify     *gamify.Engine
	aggregator *analytics.Aggregator
}

// NewEngine creates an engine from configuration.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{
		cfg:        cfg,
		gamify:     gamify.NewEngine(cfg.Rewards, cfg.Badges),
		aggregator: analytics.NewAggregator(cfg.Analytics, cfg.Mastery),
	}
}

// RecordAnswer folds one answer event into the state. Order matters:
// attempt counters and the daily streak move first, analytics absorb the
// event before any correctness branch, then scoring, scheduling, and
// finally level and badge evaluation. The caller persists the state
// afterwards; nothing here touches storage.
func (e *Engine) RecordAnswer(s *State, ev Event, now time.Time) Result {
	correct := ev.Correct()

	e.gamify.Touch(s.Stats, ev.Category, now)

	e.aggregator.Absorb(s.Report, analytics.Sample{
		QuestionID:      ev.QuestionID,
		QuestionText:    ev.QuestionText,
		Topic:           ev.Category,
		Correct:         correct,
		ResponseSeconds: ev.ResponseSeconds,
	}, now)

	xp := e.gamify.Score(s.Stats, ev.Category, correct)
	entry := s.Schedule.Apply(e.cfg.Scheduling, ev.QuestionID, correct, now)
	badges, leveledUp := e.gamify.Finish(s.Stats, now)

	return Result{
		Correct:   correct,
		XPEarned:  xp,
		LeveledUp: leveledUp,
		NewBadges: badges,
		Review:    entry,
	}
}

// NextLevelXP returns the XP remaining to the next level.
func (e *Engine) NextLevelXP(s *State) int {
	return e.gamify.NextLevelXP(s.Stats)
}

// LevelProgress returns progress through the current level in [0, 1].
func (e *Engine) LevelProgress(s *State) float64 {
	return e.gamify.LevelProgress(s.Stats)
}
