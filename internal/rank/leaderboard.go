package rank

import (
	"sort"

	"github.com/docdot/docdot/internal/learner"
)

// Entry is one leaderboard row, derived on demand and never stored.
type Entry struct {
	UserID      string
	DisplayName string
	Accuracy    float64 // percent
	Attempts    int
	Correct     int
}

// Standings ranks learners by accuracy, descending. An empty category
// ranks overall totals; otherwise only that category's attempts count.
// Learners with zero attempts in scope are excluded. Ties break by
// attempts descending, then user id ascending, so the order is
// deterministic regardless of input order.
func Standings(states []*learner.State, category string) []Entry {
	var entries []Entry
	for _, s := range states {
		attempts, correct := scopedCounts(s, category)
		if attempts == 0 {
			continue
		}
		entries = append(entries, Entry{
			UserID:      s.UserID,
			DisplayName: s.DisplayName,
			Accuracy:    float64(correct) / float64(attempts) * 100,
			Attempts:    attempts,
			Correct:     correct,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Accuracy != entries[j].Accuracy {
			return entries[i].Accuracy > entries[j].Accuracy
		}
		if entries[i].Attempts != entries[j].Attempts {
			return entries[i].Attempts > entries[j].Attempts
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries
}

func scopedCounts(s *learner.State, category string) (attempts, correct int) {
	if category == "" {
		return s.Stats.TotalAttempts, s.Stats.CorrectAnswers
	}
	cs, ok := s.Stats.CategoryStats[category]
	if !ok {
		return 0, 0
	}
	return cs.Attempts, cs.Correct
}
