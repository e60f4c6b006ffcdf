package gamify

// CategoryStat counts attempts and correct answers within one category.
// Correct never exceeds Attempts.
type CategoryStat struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// Stats is the gamification state for one learner: counters, streaks,
// XP, level, and the awarded badge set. Badges are append-only.
type Stats struct {
	TotalAttempts  int                      `json:"total_attempts"`
	CorrectAnswers int                      `json:"correct_answers"`
	Streak         int                      `json:"streak"`
	MaxStreak      int                      `json:"max_streak"`
	CategoryStats  map[string]*CategoryStat `json:"category_stats"`
	XPPoints       int                      `json:"xp_points"`
	Level          int                      `json:"level"`
	DailyStreak    int                      `json:"daily_streak"`
	StudyDays      Set                      `json:"study_days"`
	Badges         Set                      `json:"badges"`
	LastQuizDate   string                   `json:"last_quiz_date,omitempty"`
}

// NewStats returns a fresh gamification state at level 1.
func NewStats() *Stats {
	return &Stats{
		Level:         1,
		CategoryStats: make(map[string]*CategoryStat),
		StudyDays:     NewSet(),
		Badges:        NewSet(),
	}
}

// Accuracy returns the overall accuracy percentage, 0 for no attempts.
func (s *Stats) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalAttempts) * 100
}

// CategoryAccuracy returns the accuracy percentage for one category,
// 0 for an unknown category or no attempts in it.
func (s *Stats) CategoryAccuracy(category string) float64 {
	cs, ok := s.CategoryStats[category]
	if !ok || cs.Attempts == 0 {
		return 0
	}
	return float64(cs.Correct) / float64(cs.Attempts) * 100
}

// categoryStat returns the stat record for a category, creating it on
// first use.
func (s *Stats) categoryStat(category string) *CategoryStat {
	cs, ok := s.CategoryStats[category]
	if !ok {
		cs = &CategoryStat{}
		s.CategoryStats[category] = cs
	}
	return cs
}

// Achievements returns the milestone labels earned so far. Unlike badges
// these are derived on the fly, not stored.
func (s *Stats) Achievements() []string {
	var out []string
	if s.TotalAttempts >= 50 {
		out = append(out, "Quiz Master (50+ questions)")
	}
	if s.MaxStreak >= 5 {
		out = append(out, "Hot Streak (5+ correct)")
	}
	if s.Accuracy() >= 80 && s.TotalAttempts >= 20 {
		out = append(out, "Expert (80%+ accuracy)")
	}
	return out
}
