package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Config is the immutable engine configuration. A Config is built once at
// startup (Default, optionally overridden by Load) and passed into the
// engines; nothing mutates it afterwards.
type Config struct {
	Categories Taxonomy
	Scheduling Scheduling
	Rewards    Rewards
	Badges     Badges
	Mastery    Mastery
	Analytics  Analytics
	Selector   Selector
}

// Taxonomy maps top-level categories to their subcategories. Categories
// with no subcategories map to an empty slice.
type Taxonomy map[string][]string

// Names returns the top-level category names in sorted order.
func (t Taxonomy) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contains reports whether name is a known top-level category.
func (t Taxonomy) Contains(name string) bool {
	_, ok := t[name]
	return ok
}

// Scheduling holds the spaced repetition policy parameters.
type Scheduling struct {
	MinIntervalDays int // floor for the review interval
	MaxIntervalDays int // cap for the review interval
	MaxDifficulty   int // difficulty ceiling
	MissDifficulty  int // initial difficulty for a question first missed
}

// Rewards holds the XP and level parameters.
type Rewards struct {
	BaseXP        int // XP for a correct answer before the streak bonus
	StreakBonusXP int // XP per streak unit, streak counted after increment
	AttemptXP     int // consolation XP for an incorrect answer
	XPPerLevel    int
	MaxLevel      int
}

// Badges holds the badge predicate thresholds.
type Badges struct {
	WeekStreakDays    int
	MonthStreakDays   int
	BeginnerAttempts  int
	ScholarAttempts   int
	GeniusAttempts    int
	PerfectionistPct  float64
	PerfectionistMin  int
	ConsistentPct     float64
	ConsistentMin     int
	FireStreak        int
	LightningStreak   int
	CategoryMasterMin int
	CategoryMasterPct float64
}

// Mastery holds the concept mastery adjustment parameters.
type Mastery struct {
	GainPerCorrect int
	LossPerMiss    int
}

// Analytics holds the aggregation window sizes.
type Analytics struct {
	TrendWindow        int // last-N correctness window per topic
	ResponseTimeWindow int // last-N response times per question
}

// Selector holds the question selection policy parameters.
type Selector struct {
	// ReviewProbability is the chance that a due review item is served
	// instead of a random question when the due set is non-empty.
	ReviewProbability float64
}

// Default returns the stock configuration: the medical category taxonomy
// and the standard policy constants.
func Default() Config {
	return Config{
		Categories: Taxonomy{
			"Biostatistics":      {},
			"Behavioral Science": {},
			"Anatomy": {
				"Head and Neck",
				"Upper Limb",
				"Thorax",
				"Lower Limb",
				"Pelvis and Perineum",
				"Neuroanatomy",
				"Abdomen",
			},
			"Physiology": {
				"Cell",
				"Nerve and Muscle",
				"Blood",
				"Endocrine",
				"Reproductive",
				"Gastrointestinal Tract",
				"Renal",
				"Cardiovascular System",
				"Respiration",
				"Medical Genetics",
				"Neurophysiology",
			},
			"Histology and Embryology": {},
		},
		Scheduling: Scheduling{
			MinIntervalDays: 1,
			MaxIntervalDays: 30,
			MaxDifficulty:   5,
			MissDifficulty:  3,
		},
		Rewards: Rewards{
			BaseXP:        10,
			StreakBonusXP: 2,
			AttemptXP:     2,
			XPPerLevel:    100,
			MaxLevel:      50,
		},
		Badges: Badges{
			WeekStreakDays:    7,
			MonthStreakDays:   30,
			BeginnerAttempts:  25,
			ScholarAttempts:   100,
			GeniusAttempts:    500,
			PerfectionistPct:  90,
			PerfectionistMin:  50,
			ConsistentPct:     75,
			ConsistentMin:     20,
			FireStreak:        10,
			LightningStreak:   25,
			CategoryMasterMin: 20,
			CategoryMasterPct: 85,
		},
		Mastery: Mastery{
			GainPerCorrect: 5,
			LossPerMiss:    3,
		},
		Analytics: Analytics{
			TrendWindow:        10,
			ResponseTimeWindow: 5,
		},
		Selector: Selector{
			ReviewProbability: 0.30,
		},
	}
}

// Load returns Default overridden by values from an optional config file
// and DOCDOT_* environment variables. An empty path means file discovery
// is skipped and only the environment applies.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("docdot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v.IsSet("selector.review_probability") {
		p := v.GetFloat64("selector.review_probability")
		if p < 0 || p > 1 {
			return Config{}, fmt.Errorf("selector.review_probability %v out of range [0,1]", p)
		}
		cfg.Selector.ReviewProbability = p
	}
	if v.IsSet("scheduling.max_interval_days") {
		cfg.Scheduling.MaxIntervalDays = v.GetInt("scheduling.max_interval_days")
	}
	if v.IsSet("rewards.base_xp") {
		cfg.Rewards.BaseXP = v.GetInt("rewards.base_xp")
	}
	if v.IsSet("rewards.streak_bonus_xp") {
		cfg.Rewards.StreakBonusXP = v.GetInt("rewards.streak_bonus_xp")
	}
	if v.IsSet("rewards.attempt_xp") {
		cfg.Rewards.AttemptXP = v.GetInt("rewards.attempt_xp")
	}

	return cfg, nil
}
