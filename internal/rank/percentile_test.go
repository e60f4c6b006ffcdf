package rank

import (
	"testing"

	"github.com/docdot/docdot/internal/learner"
)

func TestAveragesSkipsZeroAttempts(t *testing.T) {
	states := []*learner.State{
		makeState("a", 10, 5), // 50%
		makeState("b", 30, 27), // 90%
		makeState("lurker", 0, 0),
	}
	states[0].Stats.DailyStreak = 2
	states[1].Stats.DailyStreak = 4

	avg := Averages(states)
	if avg.Accuracy != 70 {
		t.Errorf("avg accuracy = %v, want 70", avg.Accuracy)
	}
	if avg.Attempts != 20 {
		t.Errorf("avg attempts = %v, want 20", avg.Attempts)
	}
	if avg.DailyStreak != 3 {
		t.Errorf("avg streak = %v, want 3", avg.DailyStreak)
	}
}

func TestAveragesDefaultsWhenEmpty(t *testing.T) {
	avg := Averages(nil)
	if avg.Accuracy != 50 || avg.Attempts != 10 || avg.DailyStreak != 1 {
		t.Errorf("defaults = %+v", avg)
	}
}

func TestPercentileAverageLearner(t *testing.T) {
	s := makeState("avg", 10, 5)
	s.Stats.DailyStreak = 1

	// A learner exactly at the peer averages scores 50+30+20 = 99 (clamped).
	got := Percentile(s, PeerAverages{Accuracy: 50, Attempts: 10, DailyStreak: 1})
	if got != 99 {
		t.Errorf("percentile = %v, want 99", got)
	}
}

func TestPercentileBelowAverage(t *testing.T) {
	s := makeState("low", 5, 1) // 20% accuracy
	s.Stats.DailyStreak = 0

	got := Percentile(s, PeerAverages{Accuracy: 80, Attempts: 40, DailyStreak: 5})
	// 20/80*50 = 12.5, 5/40*30 = 3.75, 0/5*20 = 0
	if got != 16.25 {
		t.Errorf("percentile = %v, want 16.25", got)
	}
}

func TestPercentileClampedAt99(t *testing.T) {
	s := makeState("ace", 500, 500)
	s.Stats.DailyStreak = 100

	got := Percentile(s, PeerAverages{Accuracy: 10, Attempts: 1, DailyStreak: 0.5})
	if got != 99 {
		t.Errorf("percentile = %v, want 99", got)
	}
}
