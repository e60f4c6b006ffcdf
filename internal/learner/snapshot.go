package learner

import (
	"github.com/docdot/docdot/internal/analytics"
	"github.com/docdot/docdot/internal/gamify"
	"github.com/docdot/docdot/internal/schedule"
)

// Snapshot is the persisted form of a learner state. Sets serialize as
// sorted lists and the review book as a list in first-seen order; the
// store owns the actual encoding.
type Snapshot struct {
	UserID      string            `json:"user_id"`
	DisplayName string            `json:"display_name"`
	Stats       *gamify.Stats     `json:"stats"`
	Reviews     []*schedule.Entry `json:"spaced_repetition"`
	Report      *analytics.Report `json:"analytics"`
}

// ToSnapshot exports the state for persistence.
func (s *State) ToSnapshot() *Snapshot {
	return &Snapshot{
		UserID:      s.UserID,
		DisplayName: s.DisplayName,
		Stats:       s.Stats,
		Reviews:     s.Schedule.All(),
		Report:      s.Report,
	}
}

// FromSnapshot rebuilds a state from its persisted form. Missing parts
// come back empty, so partially stored or older snapshots still load.
func FromSnapshot(snap *Snapshot) *State {
	if snap == nil {
		return nil
	}
	s := NewState(snap.UserID, snap.DisplayName)
	if snap.Stats != nil {
		s.Stats = snap.Stats
		if s.Stats.CategoryStats == nil {
			s.Stats.CategoryStats = make(map[string]*gamify.CategoryStat)
		}
		if s.Stats.StudyDays == nil {
			s.Stats.StudyDays = gamify.NewSet()
		}
		if s.Stats.Badges == nil {
			s.Stats.Badges = gamify.NewSet()
		}
		if s.Stats.Level < 1 {
			s.Stats.Level = 1
		}
	}
	if len(snap.Reviews) > 0 {
		s.Schedule = schedule.Load(snap.Reviews)
	}
	if snap.Report != nil {
		s.Report = normalizeReport(snap.Report)
	}
	return s
}

func normalizeReport(r *analytics.Report) *analytics.Report {
	if r.Daily == nil {
		r.Daily = make(map[string]*analytics.DailyPerformance)
	}
	if r.TopicTime == nil {
		r.TopicTime = make(map[string]*analytics.TopicTime)
	}
	if r.Curves == nil {
		r.Curves = make(map[string][]*analytics.CurvePoint)
	}
	if r.Weaknesses == nil {
		r.Weaknesses = make(map[string]*analytics.WeaknessPattern)
	}
	if r.ResponseTimes == nil {
		r.ResponseTimes = make(map[string][]float64)
	}
	if r.Mastery == nil {
		r.Mastery = make(map[string]*analytics.ConceptMastery)
	}
	return r
}
