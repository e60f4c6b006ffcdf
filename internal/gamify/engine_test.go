package gamify

import (
	"testing"
	"time"

	"github.com/docdot/docdot/internal/config"
)

func newTestEngine() *Engine {
	cfg := config.Default()
	return NewEngine(cfg.Rewards, cfg.Badges)
}

var day = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// answer runs the full Touch/Score/Finish cycle for one answer.
func answer(e *Engine, s *Stats, category string, correct bool, when time.Time) int {
	e.Touch(s, category, when)
	xp := e.Score(s, category, correct)
	e.Finish(s, when)
	return xp
}

func TestScoreCorrectXP(t *testing.T) {
	e := newTestEngine()
	s := NewStats()

	// 10 base + 2 per streak unit, streak counted after increment.
	if xp := answer(e, s, "Anatomy", true, day); xp != 12 {
		t.Errorf("first correct XP = %d, want 12", xp)
	}
	if xp := answer(e, s, "Anatomy", true, day); xp != 14 {
		t.Errorf("second correct XP = %d, want 14", xp)
	}
	if s.XPPoints != 26 {
		t.Errorf("total XP = %d, want 26", s.XPPoints)
	}
}

func TestScoreIncorrectResetsStreak(t *testing.T) {
	e := newTestEngine()
	s := NewStats()

	answer(e, s, "Anatomy", true, day)
	answer(e, s, "Anatomy", true, day)
	xp := answer(e, s, "Anatomy", false, day)

	if xp != 2 {
		t.Errorf("incorrect XP = %d, want 2", xp)
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d, want 0", s.Streak)
	}
	if s.MaxStreak != 2 {
		t.Errorf("max streak = %d, want 2", s.MaxStreak)
	}
}

func TestCategoryCounters(t *testing.T) {
	e := newTestEngine()
	s := NewStats()

	answer(e, s, "Anatomy", true, day)
	answer(e, s, "Anatomy", false, day)
	answer(e, s, "Physiology", true, day)

	anat := s.CategoryStats["Anatomy"]
	if anat.Attempts != 2 || anat.Correct != 1 {
		t.Errorf("Anatomy = %d/%d, want 1/2", anat.Correct, anat.Attempts)
	}
	phys := s.CategoryStats["Physiology"]
	if phys.Attempts != 1 || phys.Correct != 1 {
		t.Errorf("Physiology = %d/%d, want 1/1", phys.Correct, phys.Attempts)
	}
}

func TestLevelUp(t *testing.T) {
	e := newTestEngine()
	s := NewStats()
	s.XPPoints = 95

	e.Touch(s, "Anatomy", day)
	e.Score(s, "Anatomy", true) // +12 → 107
	badges, leveledUp := e.Finish(s, day)

	if !leveledUp {
		t.Fatal("expected level up")
	}
	if s.Level != 2 {
		t.Errorf("level = %d, want 2", s.Level)
	}
	found := false
	for _, b := range badges {
		if b == "Level 2" {
			found = true
		}
	}
	if !found {
		t.Errorf("badges %v missing Level 2", badges)
	}
}

func TestLevelCap(t *testing.T) {
	e := newTestEngine()
	s := NewStats()
	s.XPPoints = 1_000_000
	s.Level = 50

	_, leveledUp := e.Finish(s, day)
	if leveledUp {
		t.Error("level should stay capped at 50")
	}
	if s.Level != 50 {
		t.Errorf("level = %d, want 50", s.Level)
	}
}

func TestDailyStreak(t *testing.T) {
	e := newTestEngine()
	s := NewStats()

	answer(e, s, "Anatomy", true, day)
	if s.DailyStreak != 1 {
		t.Fatalf("day 1 streak = %d, want 1", s.DailyStreak)
	}

	// Same day does not bump the streak.
	answer(e, s, "Anatomy", true, day.Add(2*time.Hour))
	if s.DailyStreak != 1 {
		t.Errorf("same-day streak = %d, want 1", s.DailyStreak)
	}

	// Consecutive day extends it.
	answer(e, s, "Anatomy", true, day.AddDate(0, 0, 1))
	if s.DailyStreak != 2 {
		t.Errorf("day 2 streak = %d, want 2", s.DailyStreak)
	}

	// A gap resets to 1.
	answer(e, s, "Anatomy", true, day.AddDate(0, 0, 5))
	if s.DailyStreak != 1 {
		t.Errorf("post-gap streak = %d, want 1", s.DailyStreak)
	}

	if len(s.StudyDays) != 3 {
		t.Errorf("study days = %d, want 3", len(s.StudyDays))
	}
}

func TestBadgeSweepIdempotent(t *testing.T) {
	e := newTestEngine()
	s := NewStats()

	// 25 attempts earns Beginner exactly once.
	var total []string
	for range 25 {
		e.Touch(s, "Anatomy", day)
		e.Score(s, "Anatomy", false)
		badges, _ := e.Finish(s, day)
		total = append(total, badges...)
	}

	count := 0
	for _, b := range total {
		if b == BadgeBeginner {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Beginner awarded %d times, want 1", count)
	}
	if !s.Badges.Has(BadgeBeginner) {
		t.Error("Beginner badge not present")
	}
}

func TestFireStreakBadge(t *testing.T) {
	e := newTestEngine()
	s := NewStats()

	for range 10 {
		answer(e, s, "Anatomy", true, day)
	}
	if !s.Badges.Has(BadgeFireStreak) {
		t.Error("expected Fire Streak after a 10-answer run")
	}
}

func TestCategoryMasterBadge(t *testing.T) {
	e := newTestEngine()
	s := NewStats()

	// 20 attempts at 100% accuracy in one category.
	for range 20 {
		answer(e, s, "Physiology", true, day)
	}
	if !s.Badges.Has(CategoryMasterBadge("Physiology")) {
		t.Error("expected Physiology Master badge")
	}
	if s.Badges.Has(CategoryMasterBadge("Anatomy")) {
		t.Error("unexpected Anatomy Master badge")
	}
}

func TestLastQuizDateStamp(t *testing.T) {
	e := newTestEngine()
	s := NewStats()

	answer(e, s, "Anatomy", true, day)
	if s.LastQuizDate != "2026-03-10" {
		t.Errorf("last quiz date = %q, want 2026-03-10", s.LastQuizDate)
	}
}

func TestLevelProgress(t *testing.T) {
	e := newTestEngine()
	s := NewStats()
	s.XPPoints = 50

	if got := e.LevelProgress(s); got != 0.5 {
		t.Errorf("progress = %v, want 0.5", got)
	}
	if got := e.NextLevelXP(s); got != 50 {
		t.Errorf("next level XP = %d, want 50", got)
	}
}
