package rank

import (
	"testing"

	"github.com/docdot/docdot/internal/gamify"
	"github.com/docdot/docdot/internal/learner"
)

func makeState(userID string, attempts, correct int) *learner.State {
	s := learner.NewState(userID, userID)
	s.Stats.TotalAttempts = attempts
	s.Stats.CorrectAnswers = correct
	return s
}

func TestStandingsOrdering(t *testing.T) {
	states := []*learner.State{
		makeState("carol", 10, 5),
		makeState("alice", 20, 18),
		makeState("bob", 10, 10),
	}

	got := Standings(states, "")
	want := []string{"bob", "alice", "carol"}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].UserID != want[i] {
			t.Errorf("standings[%d] = %q, want %q", i, got[i].UserID, want[i])
		}
	}
}

func TestStandingsExcludesZeroAttempts(t *testing.T) {
	states := []*learner.State{
		makeState("active", 5, 3),
		makeState("lurker", 0, 0),
	}

	got := Standings(states, "")
	if len(got) != 1 || got[0].UserID != "active" {
		t.Errorf("standings = %v, want only active", got)
	}
}

func TestStandingsTieBreaks(t *testing.T) {
	states := []*learner.State{
		makeState("zoe", 10, 8),
		makeState("amy", 10, 8),
		makeState("deb", 20, 16),
	}

	got := Standings(states, "")
	// Same 80% accuracy: more attempts first, then user id.
	want := []string{"deb", "amy", "zoe"}
	for i := range want {
		if got[i].UserID != want[i] {
			t.Errorf("standings[%d] = %q, want %q", i, got[i].UserID, want[i])
		}
	}
}

func TestStandingsByCategory(t *testing.T) {
	a := makeState("a", 30, 10)
	a.Stats.CategoryStats["Anatomy"] = &gamify.CategoryStat{Attempts: 10, Correct: 9}

	b := makeState("b", 30, 29)
	// b never touched Anatomy.

	got := Standings([]*learner.State{a, b}, "Anatomy")
	if len(got) != 1 || got[0].UserID != "a" {
		t.Fatalf("category standings = %v, want only a", got)
	}
	if got[0].Accuracy != 90 {
		t.Errorf("accuracy = %v, want 90", got[0].Accuracy)
	}
}
