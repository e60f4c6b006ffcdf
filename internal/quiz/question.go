package quiz

import "context"

// AllCategories is the sentinel category meaning "no filter".
const AllCategories = "All Categories"

// Question is one true/false question as served to the learner.
type Question struct {
	ID            string
	Text          string
	Answer        bool // the correct true/false answer
	Explanation   string
	AIExplanation string
	References    map[string]string
	Category      string
	Subcategory   string

	// IsReview marks a question served from the due-review set rather
	// than the random pool.
	IsReview bool
}

// Repository supplies questions. Implementations return nil (not an
// error) when nothing matches; missing questions are expected, not
// exceptional.
type Repository interface {
	// GetRandom returns a uniformly random question, filtered to the
	// category unless it is empty or AllCategories.
	GetRandom(ctx context.Context, category string) (*Question, error)

	// GetByID returns the question with the given id, or nil.
	GetByID(ctx context.Context, id string) (*Question, error)

	// GetByCategory returns all questions in a category.
	GetByCategory(ctx context.Context, category string) ([]*Question, error)
}
