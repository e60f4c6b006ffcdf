package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/docdot/docdot/internal/config"
	"github.com/docdot/docdot/internal/learner"
)

// Selector decides what question a learner sees next: a due spaced
// repetition item with the configured probability, otherwise a random
// pick from the repository.
type Selector struct {
	repo Repository
	prob float64
	rng  *rand.Rand
}

// NewSelector creates a selector. The rng drives both the review coin
// flip and nothing else; the repository makes its own random pick.
func NewSelector(repo Repository, cfg config.Selector, rng *rand.Rand) *Selector {
	return &Selector{repo: repo, prob: cfg.ReviewProbability, rng: rng}
}

// Next returns the next question for the learner in the given category
// (empty or AllCategories for no filter). Returns nil with no error when
// the repository has nothing for the filter; the caller ends the quiz
// turn gracefully.
func (s *Selector) Next(ctx context.Context, state *learner.State, category string, today time.Time) (*Question, error) {
	if q, err := s.pickReview(ctx, state, category, today); err != nil {
		return nil, err
	} else if q != nil {
		return q, nil
	}

	if category == AllCategories {
		category = ""
	}
	q, err := s.repo.GetRandom(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("random question: %w", err)
	}
	return q, nil
}

// pickReview serves the highest-priority due item with probability prob.
// The item must exist in the repository, and when a category filter is
// active it must belong to that category; otherwise the review draw is
// abandoned for this turn.
func (s *Selector) pickReview(ctx context.Context, state *learner.State, category string, today time.Time) (*Question, error) {
	due := state.Schedule.Due(today)
	if len(due) == 0 || s.rng.Float64() >= s.prob {
		return nil, nil
	}

	q, err := s.repo.GetByID(ctx, due[0].QuestionID)
	if err != nil {
		return nil, fmt.Errorf("review question %s: %w", due[0].QuestionID, err)
	}
	if q == nil {
		return nil, nil
	}
	if category != "" && category != AllCategories && q.Category != category {
		return nil, nil
	}
	q.IsReview = true
	return q, nil
}
