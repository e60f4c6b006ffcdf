package analytics

// DayFormat is the calendar-day key for all dated records.
const DayFormat = "2006-01-02"

// DailyPerformance aggregates one calendar day of answering.
type DailyPerformance struct {
	Attempts  int      `json:"attempts"`
	Correct   int      `json:"correct"`
	TimeSpent float64  `json:"time_spent"` // seconds
	Topics    []string `json:"topics"`     // unique, first-touch order
}

// TopicTime accumulates time spent on one topic.
type TopicTime struct {
	TotalTime float64 `json:"total_time"` // seconds
	Questions int     `json:"questions"`
	AvgPerQ   float64 `json:"avg_time_per_q"`
}

// CurvePoint is one dated point on a topic's learning curve. A topic gets
// at most one point per day, updated in place as answers arrive.
type CurvePoint struct {
	Date     string  `json:"date"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// WeaknessPattern tracks errors on one topic: how many, what kind, and a
// sliding correctness window for the recent trend.
type WeaknessPattern struct {
	ErrorCount  int      `json:"error_count"`
	MistakeTags []string `json:"common_mistakes"`
	Trend       []bool   `json:"improvement_trend"` // last N answers, oldest first
}

// MasteryPoint is one step in a concept's mastery progression.
type MasteryPoint struct {
	Date    string `json:"date"`
	Mastery int    `json:"mastery"`
	Correct bool   `json:"correct"`
}

// ConceptMastery is a 0-100 score per concept reflecting the recent
// correctness trend, with its full progression history.
type ConceptMastery struct {
	Level       int             `json:"mastery_level"`
	LastTested  string          `json:"last_tested"`
	Progression []*MasteryPoint `json:"progression"`
}

// Report is the full analytics state for one learner. Every answer event
// is folded in exactly once, correct or not.
type Report struct {
	Daily         map[string]*DailyPerformance `json:"daily_performance"`
	TopicTime     map[string]*TopicTime        `json:"topic_time_tracking"`
	Curves        map[string][]*CurvePoint     `json:"learning_curve"`
	Weaknesses    map[string]*WeaknessPattern  `json:"weakness_patterns"`
	ResponseTimes map[string][]float64         `json:"response_times"`
	Mastery       map[string]*ConceptMastery   `json:"concept_mastery"`
}

// NewReport returns an empty analytics state.
func NewReport() *Report {
	return &Report{
		Daily:         make(map[string]*DailyPerformance),
		TopicTime:     make(map[string]*TopicTime),
		Curves:        make(map[string][]*CurvePoint),
		Weaknesses:    make(map[string]*WeaknessPattern),
		ResponseTimes: make(map[string][]float64),
		Mastery:       make(map[string]*ConceptMastery),
	}
}
