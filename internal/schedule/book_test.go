package schedule

import (
	"testing"
	"time"

	"github.com/docdot/docdot/internal/config"
)

var testCfg = config.Scheduling{
	MinIntervalDays: 1,
	MaxIntervalDays: 30,
	MaxDifficulty:   5,
	MissDifficulty:  3,
}

var day = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func TestApplyFirstSightCorrect(t *testing.T) {
	b := NewBook()
	e := b.Apply(testCfg, "q1", true, day)

	if e.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", e.IntervalDays)
	}
	if e.Difficulty != 0 {
		t.Errorf("difficulty = %d, want 0", e.Difficulty)
	}
	if e.NextReview != "2026-03-11" {
		t.Errorf("next review = %q, want 2026-03-11", e.NextReview)
	}
}

func TestApplyFirstSightIncorrect(t *testing.T) {
	b := NewBook()
	e := b.Apply(testCfg, "q1", false, day)

	if e.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", e.IntervalDays)
	}
	if e.Difficulty != 3 {
		t.Errorf("difficulty = %d, want 3", e.Difficulty)
	}
}

func TestApplyCorrectDoublesUntilCap(t *testing.T) {
	b := NewBook()
	want := []int{1, 2, 4, 8, 16, 30, 30}

	for i, w := range want {
		e := b.Apply(testCfg, "q1", true, day)
		if e.IntervalDays != w {
			t.Errorf("answer %d: interval = %d, want %d", i+1, e.IntervalDays, w)
		}
	}
}

func TestApplyIncorrectHalvesUntilFloor(t *testing.T) {
	b := NewBook()
	// Grow to the cap first.
	for range 7 {
		b.Apply(testCfg, "q1", true, day)
	}

	want := []int{15, 7, 3, 1, 1}
	for i, w := range want {
		e := b.Apply(testCfg, "q1", false, day)
		if e.IntervalDays != w {
			t.Errorf("miss %d: interval = %d, want %d", i+1, e.IntervalDays, w)
		}
	}
}

func TestApplyDifficultyClamps(t *testing.T) {
	b := NewBook()
	b.Apply(testCfg, "q1", false, day) // init at 3

	for range 10 {
		b.Apply(testCfg, "q1", false, day)
	}
	if d := b.Get("q1").Difficulty; d != 5 {
		t.Errorf("difficulty after misses = %d, want 5", d)
	}

	for range 10 {
		b.Apply(testCfg, "q1", true, day)
	}
	if d := b.Get("q1").Difficulty; d != 0 {
		t.Errorf("difficulty after corrects = %d, want 0", d)
	}
}

func TestIsDue(t *testing.T) {
	e := &Entry{QuestionID: "q1"}
	if !e.IsDue(day) {
		t.Error("entry without a date should be due")
	}

	e.NextReview = "2026-03-10"
	if !e.IsDue(day) {
		t.Error("entry scheduled today should be due")
	}

	e.NextReview = "2026-03-09"
	if !e.IsDue(day) {
		t.Error("entry scheduled yesterday should be due")
	}

	e.NextReview = "2026-03-11"
	if e.IsDue(day) {
		t.Error("entry scheduled tomorrow should not be due")
	}
}

func TestDueOrdersHardestFirst(t *testing.T) {
	b := Load([]*Entry{
		{QuestionID: "easy", IntervalDays: 4, Difficulty: 1, NextReview: "2026-03-10"},
		{QuestionID: "hard", IntervalDays: 2, Difficulty: 5, NextReview: "2026-03-09"},
		{QuestionID: "future", IntervalDays: 1, Difficulty: 5, NextReview: "2026-04-01"},
		{QuestionID: "medium", IntervalDays: 1, Difficulty: 1, NextReview: "2026-03-08"},
	})

	due := b.Due(day)
	got := make([]string, len(due))
	for i, e := range due {
		got[i] = e.QuestionID
	}

	want := []string{"hard", "medium", "easy"}
	if len(got) != len(want) {
		t.Fatalf("due = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("due[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDueTiesKeepFirstSeenOrder(t *testing.T) {
	b := NewBook()
	b.Apply(testCfg, "a", true, day.AddDate(0, 0, -2))
	b.Apply(testCfg, "b", true, day.AddDate(0, 0, -2))
	b.Apply(testCfg, "c", true, day.AddDate(0, 0, -2))

	due := b.Due(day)
	if len(due) != 3 {
		t.Fatalf("len(due) = %d, want 3", len(due))
	}
	for i, want := range []string{"a", "b", "c"} {
		if due[i].QuestionID != want {
			t.Errorf("due[%d] = %q, want %q", i, due[i].QuestionID, want)
		}
	}
}

func TestLoadSkipsInvalidAndDuplicates(t *testing.T) {
	b := Load([]*Entry{
		{QuestionID: "q1", IntervalDays: 2},
		nil,
		{QuestionID: ""},
		{QuestionID: "q1", IntervalDays: 9},
		{QuestionID: "q2", IntervalDays: 4},
	})

	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
	if b.Get("q1").IntervalDays != 2 {
		t.Errorf("duplicate should not overwrite first entry")
	}

	all := b.All()
	if all[0].QuestionID != "q1" || all[1].QuestionID != "q2" {
		t.Errorf("All() order = [%s %s], want [q1 q2]", all[0].QuestionID, all[1].QuestionID)
	}
}
