package gamify

import (
	"time"

	"github.com/docdot/docdot/internal/config"
)

// DayFormat is the calendar-day key for study days and quiz dates.
const DayFormat = "2006-01-02"

// Engine applies answer outcomes to a learner's gamification state.
// The engine itself is stateless; it carries only configuration.
type Engine struct {
	rewards config.Rewards
	badges  config.Badges
}

// NewEngine creates an engine with the given reward and badge parameters.
func NewEngine(rewards config.Rewards, badges config.Badges) *Engine {
	return &Engine{rewards: rewards, badges: badges}
}

// Touch records that an attempt happened: bumps the attempt counters and
// updates the study-day set and daily streak. Called once per answer,
// before the correctness branch.
func (e *Engine) Touch(s *Stats, category string, today time.Time) {
	s.TotalAttempts++
	s.categoryStat(category).Attempts++

	day := today.Format(DayFormat)
	if !s.StudyDays.Has(day) {
		s.StudyDays.Add(day)
		yesterday := today.AddDate(0, 0, -1).Format(DayFormat)
		if s.LastQuizDate == yesterday {
			s.DailyStreak++
		} else {
			s.DailyStreak = 1
		}
	}
}

// Score applies the correctness branch: correct bumps the correct
// counters and streak and earns 10 XP plus 2 per streak unit (streak
// counted after its increment); incorrect resets the streak and earns
// the consolation XP. Returns the XP earned.
func (e *Engine) Score(s *Stats, category string, correct bool) int {
	if !correct {
		s.Streak = 0
		s.XPPoints += e.rewards.AttemptXP
		return e.rewards.AttemptXP
	}

	s.CorrectAnswers++
	s.categoryStat(category).Correct++
	s.Streak++
	if s.Streak > s.MaxStreak {
		s.MaxStreak = s.Streak
	}
	earned := e.rewards.BaseXP + e.rewards.StreakBonusXP*s.Streak
	s.XPPoints += earned
	return earned
}

// Finish closes out an answer: recomputes the level, sweeps the badge
// predicates, and stamps the quiz date. Returns any newly awarded badges
// and whether the learner leveled up. Awarding is idempotent; a second
// sweep over unchanged state adds nothing.
func (e *Engine) Finish(s *Stats, today time.Time) (newBadges []string, leveledUp bool) {
	level := s.XPPoints/e.rewards.XPPerLevel + 1
	if level > e.rewards.MaxLevel {
		level = e.rewards.MaxLevel
	}
	if level > s.Level {
		s.Level = level
		leveledUp = true
		newBadges = append(newBadges, e.award(s, LevelBadge(level))...)
	}

	newBadges = append(newBadges, e.sweepBadges(s)...)
	s.LastQuizDate = today.Format(DayFormat)
	return newBadges, leveledUp
}

// NextLevelXP returns the XP still needed to reach the next level, or 0
// at the level cap.
func (e *Engine) NextLevelXP(s *Stats) int {
	remaining := s.Level*e.rewards.XPPerLevel - s.XPPoints
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LevelProgress returns progress through the current level in [0, 1].
func (e *Engine) LevelProgress(s *Stats) float64 {
	progress := float64(s.XPPoints-(s.Level-1)*e.rewards.XPPerLevel) / float64(e.rewards.XPPerLevel)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// award adds a badge if absent and reports it as new.
func (e *Engine) award(s *Stats, badge string) []string {
	if s.Badges.Has(badge) {
		return nil
	}
	s.Badges.Add(badge)
	return []string{badge}
}
