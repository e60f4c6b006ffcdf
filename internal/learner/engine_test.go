package learner

import (
	"testing"
	"time"

	"github.com/docdot/docdot/internal/config"
)

var day = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestRecordAnswerCorrect(t *testing.T) {
	e := NewEngine(config.Default())
	s := NewState("lena", "Lena")

	res := e.RecordAnswer(s, Event{
		QuestionID:      "q1",
		Category:        "Anatomy",
		QuestionText:    "The femur is the longest bone.",
		Expected:        true,
		Given:           true,
		ResponseSeconds: 3.5,
	}, day)

	if !res.Correct {
		t.Fatal("expected correct result")
	}
	if res.XPEarned != 12 {
		t.Errorf("XP = %d, want 12", res.XPEarned)
	}
	if res.Review == nil || res.Review.IntervalDays != 1 {
		t.Errorf("review entry = %+v, want interval 1", res.Review)
	}

	if s.Stats.TotalAttempts != 1 || s.Stats.CorrectAnswers != 1 {
		t.Errorf("stats = %d/%d, want 1/1", s.Stats.CorrectAnswers, s.Stats.TotalAttempts)
	}
	if s.Stats.DailyStreak != 1 {
		t.Errorf("daily streak = %d, want 1", s.Stats.DailyStreak)
	}
	if s.Report.Daily["2026-03-10"] == nil {
		t.Error("analytics did not record the day")
	}
	if s.Schedule.Get("q1") == nil {
		t.Error("schedule did not track the question")
	}
}

func TestRecordAnswerIncorrect(t *testing.T) {
	e := NewEngine(config.Default())
	s := NewState("lena", "Lena")

	res := e.RecordAnswer(s, Event{
		QuestionID: "q1",
		Category:   "Physiology",
		Expected:   true,
		Given:      false,
	}, day)

	if res.Correct {
		t.Fatal("expected incorrect result")
	}
	if res.XPEarned != 2 {
		t.Errorf("XP = %d, want 2", res.XPEarned)
	}
	if res.Review.Difficulty != 3 {
		t.Errorf("difficulty = %d, want 3", res.Review.Difficulty)
	}
	if s.Stats.CorrectAnswers != 0 {
		t.Errorf("correct = %d, want 0", s.Stats.CorrectAnswers)
	}
	if s.Report.Weaknesses["Physiology"].ErrorCount != 1 {
		t.Error("weakness pattern not recorded")
	}
}

func TestRecordAnswerStreakAcrossAnswers(t *testing.T) {
	e := NewEngine(config.Default())
	s := NewState("lena", "Lena")

	ev := Event{QuestionID: "q1", Category: "Anatomy", Expected: true, Given: true}
	first := e.RecordAnswer(s, ev, day)
	ev.QuestionID = "q2"
	second := e.RecordAnswer(s, ev, day)

	if first.XPEarned != 12 || second.XPEarned != 14 {
		t.Errorf("XP = %d, %d, want 12, 14", first.XPEarned, second.XPEarned)
	}
	if s.Stats.XPPoints != 26 {
		t.Errorf("total XP = %d, want 26", s.Stats.XPPoints)
	}
}

func TestRecordAnswerAnalyticsSeesMisses(t *testing.T) {
	e := NewEngine(config.Default())
	s := NewState("lena", "Lena")

	ev := Event{QuestionID: "q1", Category: "Anatomy", Expected: true, Given: false}
	for range 3 {
		e.RecordAnswer(s, ev, day)
	}

	w := s.Report.Weaknesses["Anatomy"]
	if w == nil || w.ErrorCount != 3 {
		t.Fatalf("weakness = %+v, want 3 errors", w)
	}
	if len(w.Trend) != 3 {
		t.Errorf("trend = %v, want 3 entries", w.Trend)
	}
}
