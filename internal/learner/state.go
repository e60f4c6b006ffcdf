package learner

import (
	"github.com/docdot/docdot/internal/analytics"
	"github.com/docdot/docdot/internal/gamify"
	"github.com/docdot/docdot/internal/schedule"
)

// State is the full learner record: identity plus the three engine
// sub-states. One State exists per user; it is owned exclusively by the
// handler processing that user's events and is mutated only through
// Engine.RecordAnswer.
type State struct {
	UserID      string
	DisplayName string

	Stats    *gamify.Stats
	Schedule *schedule.Book
	Report   *analytics.Report
}

// NewState returns an empty learner state for a user. A missing stored
// state loads as exactly this.
func NewState(userID, displayName string) *State {
	return &State{
		UserID:      userID,
		DisplayName: displayName,
		Stats:       gamify.NewStats(),
		Schedule:    schedule.NewBook(),
		Report:      analytics.NewReport(),
	}
}

// Event is one answered question entering the engine.
type Event struct {
	QuestionID   string
	Category     string
	QuestionText string
	Expected     bool // the question's true/false answer
	Given        bool // what the learner answered
	// ResponseSeconds is how long the learner took; zero or negative
	// means unmeasured.
	ResponseSeconds float64
}

// Correct reports whether the given answer matched the expected one.
func (e Event) Correct() bool {
	return e.Expected == e.Given
}

// Result summarizes what one recorded answer changed, for display.
type Result struct {
	Correct   bool
	XPEarned  int
	LeveledUp bool
	NewBadges []string
	Review    *schedule.Entry
}
