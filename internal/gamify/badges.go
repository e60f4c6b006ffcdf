package gamify

import "fmt"

// Badge identifiers. Level and category-master badges are derived with
// LevelBadge and CategoryMasterBadge.
const (
	BadgeWeekWarrior   = "Week Warrior"
	BadgeMonthMaster   = "Month Master"
	BadgeBeginner      = "Beginner"
	BadgeScholar       = "Scholar"
	BadgeGenius        = "Genius"
	BadgePerfectionist = "Perfectionist"
	BadgeConsistent    = "Consistent"
	BadgeFireStreak    = "Fire Streak"
	BadgeLightning     = "Lightning Round"
)

// LevelBadge returns the badge identifier for reaching a level.
func LevelBadge(level int) string {
	return fmt.Sprintf("Level %d", level)
}

// CategoryMasterBadge returns the per-category mastery badge identifier.
func CategoryMasterBadge(category string) string {
	return fmt.Sprintf("%s Master", category)
}

// sweepBadges evaluates every badge predicate against the current state
// and awards the ones newly satisfied. Already-held badges stay put.
func (e *Engine) sweepBadges(s *Stats) []string {
	var awarded []string

	grant := func(cond bool, badge string) {
		if cond {
			awarded = append(awarded, e.award(s, badge)...)
		}
	}

	grant(s.DailyStreak >= e.badges.WeekStreakDays, BadgeWeekWarrior)
	grant(s.DailyStreak >= e.badges.MonthStreakDays, BadgeMonthMaster)

	grant(s.TotalAttempts >= e.badges.BeginnerAttempts, BadgeBeginner)
	grant(s.TotalAttempts >= e.badges.ScholarAttempts, BadgeScholar)
	grant(s.TotalAttempts >= e.badges.GeniusAttempts, BadgeGenius)

	accuracy := s.Accuracy()
	grant(accuracy >= e.badges.PerfectionistPct && s.TotalAttempts >= e.badges.PerfectionistMin, BadgePerfectionist)
	grant(accuracy >= e.badges.ConsistentPct && s.TotalAttempts >= e.badges.ConsistentMin, BadgeConsistent)

	grant(s.MaxStreak >= e.badges.FireStreak, BadgeFireStreak)
	grant(s.MaxStreak >= e.badges.LightningStreak, BadgeLightning)

	for category, cs := range s.CategoryStats {
		if cs.Attempts < e.badges.CategoryMasterMin {
			continue
		}
		pct := float64(cs.Correct) / float64(cs.Attempts) * 100
		grant(pct >= e.badges.CategoryMasterPct, CategoryMasterBadge(category))
	}

	return awarded
}

// BadgeIcon returns a display icon for a badge identifier.
func BadgeIcon(badge string) string {
	switch badge {
	case BadgeWeekWarrior, BadgeFireStreak:
		return "🔥"
	case BadgeMonthMaster:
		return "🏆"
	case BadgeBeginner:
		return "📚"
	case BadgeScholar:
		return "🎓"
	case BadgeGenius:
		return "🧠"
	case BadgePerfectionist:
		return "🎯"
	case BadgeConsistent:
		return "✅"
	case BadgeLightning:
		return "⚡"
	}
	if len(badge) > 6 && badge[:6] == "Level " {
		return "🌟"
	}
	return "🏅"
}
