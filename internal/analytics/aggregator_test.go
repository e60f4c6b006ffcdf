package analytics

import (
	"testing"
	"time"

	"github.com/docdot/docdot/internal/config"
)

func newTestAggregator() *Aggregator {
	cfg := config.Default()
	return NewAggregator(cfg.Analytics, cfg.Mastery)
}

var day = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestAbsorbDaily(t *testing.T) {
	a := newTestAggregator()
	r := NewReport()

	a.Absorb(r, Sample{QuestionID: "q1", Topic: "Anatomy", Correct: true, ResponseSeconds: 4}, day)
	a.Absorb(r, Sample{QuestionID: "q2", Topic: "Anatomy", Correct: false, ResponseSeconds: 6}, day)
	a.Absorb(r, Sample{QuestionID: "q3", Topic: "Physiology", Correct: true}, day)

	d := r.Daily["2026-03-10"]
	if d == nil {
		t.Fatal("missing daily bucket")
	}
	if d.Attempts != 3 || d.Correct != 2 {
		t.Errorf("daily = %d/%d, want 2/3", d.Correct, d.Attempts)
	}
	if d.TimeSpent != 10 {
		t.Errorf("time spent = %v, want 10", d.TimeSpent)
	}
	if len(d.Topics) != 2 {
		t.Errorf("topics = %v, want 2 unique", d.Topics)
	}
}

func TestAbsorbTopicTime(t *testing.T) {
	a := newTestAggregator()
	r := NewReport()

	a.Absorb(r, Sample{QuestionID: "q1", Topic: "Anatomy", Correct: true, ResponseSeconds: 4}, day)
	a.Absorb(r, Sample{QuestionID: "q2", Topic: "Anatomy", Correct: true, ResponseSeconds: 8}, day)

	tt := r.TopicTime["Anatomy"]
	if tt.TotalTime != 12 || tt.Questions != 2 {
		t.Errorf("topic time = %v over %d, want 12 over 2", tt.TotalTime, tt.Questions)
	}
	if tt.AvgPerQ != 6 {
		t.Errorf("avg = %v, want 6", tt.AvgPerQ)
	}
}

func TestAbsorbCurveBucketsByDay(t *testing.T) {
	a := newTestAggregator()
	r := NewReport()

	a.Absorb(r, Sample{QuestionID: "q1", Topic: "Anatomy", Correct: true}, day)
	a.Absorb(r, Sample{QuestionID: "q2", Topic: "Anatomy", Correct: false}, day)
	a.Absorb(r, Sample{QuestionID: "q3", Topic: "Anatomy", Correct: true}, day.AddDate(0, 0, 1))

	curve := r.Curves["Anatomy"]
	if len(curve) != 2 {
		t.Fatalf("curve points = %d, want 2", len(curve))
	}
	if curve[0].Accuracy != 50 {
		t.Errorf("day 1 accuracy = %v, want 50", curve[0].Accuracy)
	}
	if curve[1].Accuracy != 100 {
		t.Errorf("day 2 accuracy = %v, want 100", curve[1].Accuracy)
	}
}

func TestAbsorbWeaknessTrendWindow(t *testing.T) {
	a := newTestAggregator()
	r := NewReport()

	for range 12 {
		a.Absorb(r, Sample{QuestionID: "q1", Topic: "Anatomy", Correct: false, QuestionText: "The radial nerve innervates the triceps."}, day)
	}

	w := r.Weaknesses["Anatomy"]
	if w.ErrorCount != 12 {
		t.Errorf("error count = %d, want 12", w.ErrorCount)
	}
	if len(w.Trend) != 10 {
		t.Errorf("trend window = %d, want 10", len(w.Trend))
	}
	if w.MistakeTags[0] != MistakeNervousSystem {
		t.Errorf("tag = %q, want %q", w.MistakeTags[0], MistakeNervousSystem)
	}
}

func TestAbsorbResponseTimeWindow(t *testing.T) {
	a := newTestAggregator()
	r := NewReport()

	for i := range 8 {
		a.Absorb(r, Sample{QuestionID: "q1", Topic: "Anatomy", Correct: true, ResponseSeconds: float64(i + 1)}, day)
	}

	times := r.ResponseTimes["q1"]
	if len(times) != 5 {
		t.Fatalf("window = %d, want 5", len(times))
	}
	if times[0] != 4 || times[4] != 8 {
		t.Errorf("times = %v, want last five [4..8]", times)
	}
}

func TestAbsorbSkipsUnmeasuredResponseTime(t *testing.T) {
	a := newTestAggregator()
	r := NewReport()

	a.Absorb(r, Sample{QuestionID: "q1", Topic: "Anatomy", Correct: true}, day)
	if len(r.ResponseTimes["q1"]) != 0 {
		t.Errorf("unmeasured sample should not be tracked: %v", r.ResponseTimes["q1"])
	}
}

func TestAbsorbMasteryClamps(t *testing.T) {
	a := newTestAggregator()
	r := NewReport()

	// +5 per correct, clamped at 100.
	for range 30 {
		a.Absorb(r, Sample{QuestionID: "q1", Topic: "Anatomy", Correct: true}, day)
	}
	cm := r.Mastery["Anatomy"]
	if cm.Level != 100 {
		t.Errorf("mastery = %d, want 100", cm.Level)
	}

	// -3 per miss, floored at 0.
	for range 50 {
		a.Absorb(r, Sample{QuestionID: "q1", Topic: "Anatomy", Correct: false}, day)
	}
	if cm.Level != 0 {
		t.Errorf("mastery = %d, want 0", cm.Level)
	}
	if cm.LastTested != "2026-03-10" {
		t.Errorf("last tested = %q", cm.LastTested)
	}
	if len(cm.Progression) != 80 {
		t.Errorf("progression points = %d, want 80", len(cm.Progression))
	}
}

func TestClassifyMistake(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"The deltoid is a structure of the shoulder.", MistakeAnatomyStructure},
		{"The main function of the nephron is filtration.", MistakePhysiologyFunction},
		{"The ulnar nerve passes the medial epicondyle.", MistakeNervousSystem},
		{"Blood flows from the right atrium to the right ventricle.", MistakeCardiovascular},
		{"Mitochondria produce ATP.", MistakeGeneralConcept},
		// Priority: structure keywords beat later tables.
		{"The location of the heart is the mediastinum.", MistakeAnatomyStructure},
	}

	for _, tt := range tests {
		if got := ClassifyMistake(tt.text); got != tt.want {
			t.Errorf("ClassifyMistake(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
