package analytics

import (
	"time"

	"github.com/docdot/docdot/internal/config"
)

// Sample is one answer event as the aggregator sees it.
type Sample struct {
	QuestionID   string
	QuestionText string
	Topic        string
	Correct      bool
	// ResponseSeconds is how long the learner took. Zero or negative
	// means the time was not measured and time tracking is skipped.
	ResponseSeconds float64
}

// Aggregator folds answer events into a learner's analytics report.
// Stateless apart from configuration.
type Aggregator struct {
	cfg     config.Analytics
	mastery config.Mastery
}

// NewAggregator creates an aggregator with the given window sizes and
// mastery adjustment parameters.
func NewAggregator(cfg config.Analytics, mastery config.Mastery) *Aggregator {
	return &Aggregator{cfg: cfg, mastery: mastery}
}

// Absorb folds one event into the report. Called once per answer, before
// any correctness-dependent state changes elsewhere, so the report sees
// every event uniformly.
func (a *Aggregator) Absorb(r *Report, s Sample, today time.Time) {
	day := today.Format(DayFormat)

	a.absorbDaily(r, s, day)
	a.absorbTopicTime(r, s)
	a.absorbCurve(r, s, day)
	a.absorbWeakness(r, s)
	if s.ResponseSeconds > 0 {
		a.absorbResponseTime(r, s)
	}
	a.absorbMastery(r, s, day)
}

func (a *Aggregator) absorbDaily(r *Report, s Sample, day string) {
	d, ok := r.Daily[day]
	if !ok {
		d = &DailyPerformance{}
		r.Daily[day] = d
	}
	d.Attempts++
	if s.Correct {
		d.Correct++
	}
	if s.ResponseSeconds > 0 {
		d.TimeSpent += s.ResponseSeconds
	}
	for _, t := range d.Topics {
		if t == s.Topic {
			return
		}
	}
	d.Topics = append(d.Topics, s.Topic)
}

func (a *Aggregator) absorbTopicTime(r *Report, s Sample) {
	tt, ok := r.TopicTime[s.Topic]
	if !ok {
		tt = &TopicTime{}
		r.TopicTime[s.Topic] = tt
	}
	if s.ResponseSeconds > 0 {
		tt.TotalTime += s.ResponseSeconds
	}
	tt.Questions++
	tt.AvgPerQ = tt.TotalTime / float64(tt.Questions)
}

func (a *Aggregator) absorbCurve(r *Report, s Sample, day string) {
	curve := r.Curves[s.Topic]
	var point *CurvePoint
	for _, p := range curve {
		if p.Date == day {
			point = p
			break
		}
	}
	if point == nil {
		point = &CurvePoint{Date: day}
		r.Curves[s.Topic] = append(curve, point)
	}
	point.Attempts++
	if s.Correct {
		point.Correct++
	}
	point.Accuracy = float64(point.Correct) / float64(point.Attempts) * 100
}

func (a *Aggregator) absorbWeakness(r *Report, s Sample) {
	w, ok := r.Weaknesses[s.Topic]
	if !ok {
		w = &WeaknessPattern{}
		r.Weaknesses[s.Topic] = w
	}
	if !s.Correct {
		w.ErrorCount++
		w.MistakeTags = append(w.MistakeTags, ClassifyMistake(s.QuestionText))
	}
	w.Trend = append(w.Trend, s.Correct)
	if len(w.Trend) > a.cfg.TrendWindow {
		w.Trend = w.Trend[len(w.Trend)-a.cfg.TrendWindow:]
	}
}

func (a *Aggregator) absorbResponseTime(r *Report, s Sample) {
	times := append(r.ResponseTimes[s.QuestionID], s.ResponseSeconds)
	if len(times) > a.cfg.ResponseTimeWindow {
		times = times[len(times)-a.cfg.ResponseTimeWindow:]
	}
	r.ResponseTimes[s.QuestionID] = times
}

func (a *Aggregator) absorbMastery(r *Report, s Sample, day string) {
	cm, ok := r.Mastery[s.Topic]
	if !ok {
		cm = &ConceptMastery{}
		r.Mastery[s.Topic] = cm
	}
	if s.Correct {
		cm.Level = min(100, cm.Level+a.mastery.GainPerCorrect)
	} else {
		cm.Level = max(0, cm.Level-a.mastery.LossPerMiss)
	}
	cm.LastTested = day
	cm.Progression = append(cm.Progression, &MasteryPoint{
		Date:    day,
		Mastery: cm.Level,
		Correct: s.Correct,
	})
}
