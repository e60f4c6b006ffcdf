package rank

import "github.com/docdot/docdot/internal/learner"

// PeerAverages holds community-wide means used for percentile scoring.
type PeerAverages struct {
	Accuracy    float64
	Attempts    float64
	DailyStreak float64
	Level       float64
}

// defaultAverages stands in when there are no peers to average over.
var defaultAverages = PeerAverages{
	Accuracy:    50,
	Attempts:    10,
	DailyStreak: 1,
	Level:       1,
}

// Averages computes community means over all learners with at least one
// attempt. With no qualifying peers the stock defaults apply.
func Averages(states []*learner.State) PeerAverages {
	var avg PeerAverages
	n := 0
	for _, s := range states {
		if s.Stats.TotalAttempts == 0 {
			continue
		}
		avg.Accuracy += s.Stats.Accuracy()
		avg.Attempts += float64(s.Stats.TotalAttempts)
		avg.DailyStreak += float64(s.Stats.DailyStreak)
		avg.Level += float64(s.Stats.Level)
		n++
	}
	if n == 0 {
		return defaultAverages
	}
	avg.Accuracy /= float64(n)
	avg.Attempts /= float64(n)
	avg.DailyStreak /= float64(n)
	avg.Level /= float64(n)
	return avg
}

// Percentile scores a learner against peer averages on a 0-99 scale:
// accuracy weighted 50, volume 30, study streak 20, each component
// capped at 100 before weighting. The result is clamped to 99 so nobody
// is told they beat everyone.
func Percentile(s *learner.State, avg PeerAverages) float64 {
	accuracyScore := capScore(s.Stats.Accuracy() / nonZero(avg.Accuracy) * 50)
	volumeScore := capScore(float64(s.Stats.TotalAttempts) / nonZero(avg.Attempts) * 30)
	streakScore := capScore(float64(s.Stats.DailyStreak) / max(1, avg.DailyStreak) * 20)

	total := accuracyScore + volumeScore + streakScore
	if total > 99 {
		return 99
	}
	return total
}

func capScore(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
