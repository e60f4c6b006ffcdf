package learner

import (
	"encoding/json"
	"testing"

	"github.com/docdot/docdot/internal/config"
	"github.com/docdot/docdot/internal/gamify"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e := NewEngine(config.Default())
	s := NewState("lena", "Lena")

	events := []Event{
		{QuestionID: "q1", Category: "Anatomy", Expected: true, Given: true, ResponseSeconds: 3},
		{QuestionID: "q2", Category: "Anatomy", Expected: true, Given: false, ResponseSeconds: 7},
		{QuestionID: "q1", Category: "Anatomy", Expected: true, Given: true},
	}
	for _, ev := range events {
		e.RecordAnswer(s, ev, day)
	}

	raw, err := json.Marshal(s.ToSnapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored := FromSnapshot(&snap)

	if restored.UserID != "lena" || restored.DisplayName != "Lena" {
		t.Errorf("identity = %s/%s", restored.UserID, restored.DisplayName)
	}
	if restored.Stats.TotalAttempts != 3 || restored.Stats.CorrectAnswers != 2 {
		t.Errorf("stats = %d/%d, want 2/3", restored.Stats.CorrectAnswers, restored.Stats.TotalAttempts)
	}
	if restored.Stats.XPPoints != s.Stats.XPPoints {
		t.Errorf("XP = %d, want %d", restored.Stats.XPPoints, s.Stats.XPPoints)
	}
	if restored.Schedule.Len() != 2 {
		t.Errorf("schedule len = %d, want 2", restored.Schedule.Len())
	}
	if got := restored.Schedule.Get("q1"); got == nil || got.IntervalDays != 2 {
		t.Errorf("q1 entry = %+v, want interval 2", got)
	}
	if restored.Report.TopicTime["Anatomy"].Questions != 3 {
		t.Error("analytics report not restored")
	}
	if !restored.Stats.StudyDays.Has("2026-03-10") {
		t.Error("study days not restored")
	}

	// Schedule order survives the trip.
	all := restored.Schedule.All()
	if all[0].QuestionID != "q1" || all[1].QuestionID != "q2" {
		t.Errorf("order = [%s %s], want [q1 q2]", all[0].QuestionID, all[1].QuestionID)
	}
}

func TestFromSnapshotNil(t *testing.T) {
	if FromSnapshot(nil) != nil {
		t.Error("nil snapshot should load as nil")
	}
}

func TestFromSnapshotPartial(t *testing.T) {
	s := FromSnapshot(&Snapshot{UserID: "new", DisplayName: "New"})

	if s.Stats == nil || s.Schedule == nil || s.Report == nil {
		t.Fatal("missing sub-states should come back empty, not nil")
	}
	if s.Stats.Level != 1 {
		t.Errorf("level = %d, want 1", s.Stats.Level)
	}
	if s.Schedule.Len() != 0 {
		t.Errorf("schedule len = %d, want 0", s.Schedule.Len())
	}
}

func TestFromSnapshotLevelFloor(t *testing.T) {
	s := FromSnapshot(&Snapshot{
		UserID: "old",
		Stats:  &gamify.Stats{},
	})

	if s.Stats.Level != 1 {
		t.Errorf("level = %d, want floor of 1", s.Stats.Level)
	}
	if s.Stats.CategoryStats == nil || s.Stats.StudyDays == nil || s.Stats.Badges == nil {
		t.Error("nil maps and sets should be replaced with empty ones")
	}
}
