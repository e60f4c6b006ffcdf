package learner

import (
	"fmt"
	"sort"
)

// Insights summarizes where a learner stands: strong and weak categories
// and suggested focus areas. Derived on demand, never stored.
type Insights struct {
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// minInsightAttempts is the attempt floor below which a category's
// accuracy is too noisy to call a strength or weakness.
const minInsightAttempts = 5

// BuildInsights derives learning insights from the current state.
// Categories at or above 80% accuracy are strengths, below 60% are
// weaknesses; topics with repeated errors and a poor recent trend get a
// practice recommendation.
func BuildInsights(s *State) Insights {
	var in Insights

	categories := make([]string, 0, len(s.Stats.CategoryStats))
	for c := range s.Stats.CategoryStats {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		cs := s.Stats.CategoryStats[c]
		if cs.Attempts < minInsightAttempts {
			continue
		}
		accuracy := float64(cs.Correct) / float64(cs.Attempts) * 100
		switch {
		case accuracy >= 80:
			in.Strengths = append(in.Strengths, fmt.Sprintf("%s (%.1f%%)", c, accuracy))
		case accuracy < 60:
			in.Weaknesses = append(in.Weaknesses, fmt.Sprintf("%s (%.1f%%)", c, accuracy))
		}
	}

	topics := make([]string, 0, len(s.Report.Weaknesses))
	for t := range s.Report.Weaknesses {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	for _, t := range topics {
		w := s.Report.Weaknesses[t]
		if w.ErrorCount < 3 || len(w.Trend) == 0 {
			continue
		}
		recent := w.Trend
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		hits := 0
		for _, ok := range recent {
			if ok {
				hits++
			}
		}
		if float64(hits)/float64(len(recent)) < 0.6 {
			in.Recommendations = append(in.Recommendations, fmt.Sprintf("Focus more practice on %s", t))
		}
	}

	return in
}
