package schedule

import "time"

// DayFormat is the calendar-day key used throughout the scheduler.
// Review timing is calendar-day granular, not wall-clock granular.
const DayFormat = "2006-01-02"

// Entry holds the spaced repetition state for a single question.
type Entry struct {
	QuestionID   string `json:"question_id"`
	IntervalDays int    `json:"interval"`
	Difficulty   int    `json:"difficulty"`
	NextReview   string `json:"next_review"` // calendar day, DayFormat
}

// IsDue reports whether the entry is due on the given day.
// An entry with no scheduled date counts as due.
func (e *Entry) IsDue(today time.Time) bool {
	if e.NextReview == "" {
		return true
	}
	return e.NextReview <= today.Format(DayFormat)
}

// schedule sets the next review date interval days after today.
func (e *Entry) schedule(today time.Time) {
	e.NextReview = today.AddDate(0, 0, e.IntervalDays).Format(DayFormat)
}
