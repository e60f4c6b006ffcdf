package schedule

import (
	"sort"
	"time"

	"github.com/docdot/docdot/internal/config"
)

// Book tracks the spaced repetition entries for one learner. Entries are
// kept in first-seen order so that due-review ties resolve deterministically.
type Book struct {
	entries map[string]*Entry
	order   []string
}

// NewBook returns an empty review book.
func NewBook() *Book {
	return &Book{entries: make(map[string]*Entry)}
}

// Get returns the entry for a question, or nil if the question is unseen.
func (b *Book) Get(questionID string) *Entry {
	return b.entries[questionID]
}

// Len returns the number of tracked questions.
func (b *Book) Len() int {
	return len(b.entries)
}

// Apply folds an answer outcome into the review schedule and returns the
// updated entry. First sight initializes the entry; after that a correct
// answer doubles the interval (capped) and eases difficulty, an incorrect
// answer halves the interval (floored) and raises difficulty. The next
// review date is always interval days after today.
func (b *Book) Apply(cfg config.Scheduling, questionID string, correct bool, today time.Time) *Entry {
	e := b.entries[questionID]
	if e == nil {
		e = &Entry{
			QuestionID:   questionID,
			IntervalDays: cfg.MinIntervalDays,
		}
		if !correct {
			e.Difficulty = cfg.MissDifficulty
		}
		b.entries[questionID] = e
		b.order = append(b.order, questionID)
		e.schedule(today)
		return e
	}

	if correct {
		e.Difficulty = max(0, e.Difficulty-1)
		e.IntervalDays = min(cfg.MaxIntervalDays, e.IntervalDays*2)
	} else {
		e.Difficulty = min(cfg.MaxDifficulty, e.Difficulty+1)
		e.IntervalDays = max(cfg.MinIntervalDays, e.IntervalDays/2)
	}
	e.schedule(today)
	return e
}

// Due returns the entries due on or before today, hardest first: difficulty
// descending, then interval ascending, ties in first-seen order.
func (b *Book) Due(today time.Time) []*Entry {
	var due []*Entry
	for _, id := range b.order {
		if e := b.entries[id]; e.IsDue(today) {
			due = append(due, e)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].Difficulty != due[j].Difficulty {
			return due[i].Difficulty > due[j].Difficulty
		}
		return due[i].IntervalDays < due[j].IntervalDays
	})
	return due
}

// All returns every entry in first-seen order.
func (b *Book) All() []*Entry {
	out := make([]*Entry, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.entries[id])
	}
	return out
}

// Load rebuilds a book from persisted entries, preserving their order.
func Load(entries []*Entry) *Book {
	b := NewBook()
	for _, e := range entries {
		if e == nil || e.QuestionID == "" {
			continue
		}
		if _, dup := b.entries[e.QuestionID]; dup {
			continue
		}
		b.entries[e.QuestionID] = e
		b.order = append(b.order, e.QuestionID)
	}
	return b
}
