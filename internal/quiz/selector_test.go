package quiz

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/docdot/docdot/internal/config"
	"github.com/docdot/docdot/internal/learner"
)

// fakeRepo is an in-memory Repository.
type fakeRepo struct {
	questions map[string]*Question
	randomQ   *Question
}

func (f *fakeRepo) GetRandom(_ context.Context, category string) (*Question, error) {
	if f.randomQ != nil && (category == "" || f.randomQ.Category == category) {
		q := *f.randomQ
		return &q, nil
	}
	return nil, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeRepo) GetByCategory(_ context.Context, category string) ([]*Question, error) {
	var out []*Question
	for _, q := range f.questions {
		if q.Category == category {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

var day = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newSelector(repo Repository, prob float64, seed uint64) *Selector {
	rng := rand.New(rand.NewPCG(seed, seed))
	return NewSelector(repo, config.Selector{ReviewProbability: prob}, rng)
}

func stateWithDue(t *testing.T, questionID string) *learner.State {
	t.Helper()
	s := learner.NewState("lena", "Lena")
	cfg := config.Default().Scheduling
	s.Schedule.Apply(cfg, questionID, true, day.AddDate(0, 0, -2))
	return s
}

func TestNextServesDueReview(t *testing.T) {
	repo := &fakeRepo{
		questions: map[string]*Question{
			"q1": {ID: "q1", Text: "The liver has four lobes.", Category: "Anatomy", Answer: true},
		},
		randomQ: &Question{ID: "fresh", Category: "Anatomy"},
	}
	// Probability 1 forces the review branch whenever something is due.
	sel := newSelector(repo, 1.0, 7)
	state := stateWithDue(t, "q1")

	q, err := sel.Next(context.Background(), state, AllCategories, day)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil || q.ID != "q1" {
		t.Fatalf("got %+v, want review q1", q)
	}
	if !q.IsReview {
		t.Error("review question should be flagged IsReview")
	}
}

func TestNextSkipsReviewWhenNothingDue(t *testing.T) {
	repo := &fakeRepo{
		questions: map[string]*Question{},
		randomQ:   &Question{ID: "fresh", Category: "Physiology"},
	}
	sel := newSelector(repo, 1.0, 7)
	state := learner.NewState("lena", "Lena")

	q, err := sel.Next(context.Background(), state, AllCategories, day)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil || q.ID != "fresh" {
		t.Fatalf("got %+v, want fresh draw", q)
	}
	if q.IsReview {
		t.Error("fresh draw should not be flagged IsReview")
	}
}

func TestNextNeverReviewsAtZeroProbability(t *testing.T) {
	repo := &fakeRepo{
		questions: map[string]*Question{
			"q1": {ID: "q1", Category: "Anatomy"},
		},
		randomQ: &Question{ID: "fresh", Category: "Anatomy"},
	}
	sel := newSelector(repo, 0, 7)
	state := stateWithDue(t, "q1")

	for range 20 {
		q, err := sel.Next(context.Background(), state, AllCategories, day)
		if err != nil {
			t.Fatal(err)
		}
		if q.IsReview {
			t.Fatal("review served despite zero probability")
		}
	}
}

func TestNextAbandonsReviewOnCategoryMismatch(t *testing.T) {
	repo := &fakeRepo{
		questions: map[string]*Question{
			"q1": {ID: "q1", Category: "Anatomy"},
		},
		randomQ: &Question{ID: "fresh", Category: "Physiology"},
	}
	sel := newSelector(repo, 1.0, 7)
	state := stateWithDue(t, "q1")

	q, err := sel.Next(context.Background(), state, "Physiology", day)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil || q.ID != "fresh" {
		t.Fatalf("got %+v, want category draw instead of mismatched review", q)
	}
}

func TestNextAbandonsReviewWhenQuestionGone(t *testing.T) {
	repo := &fakeRepo{
		questions: map[string]*Question{},
		randomQ:   &Question{ID: "fresh", Category: "Anatomy"},
	}
	sel := newSelector(repo, 1.0, 7)
	state := stateWithDue(t, "vanished")

	q, err := sel.Next(context.Background(), state, AllCategories, day)
	if err != nil {
		t.Fatal(err)
	}
	if q == nil || q.ID != "fresh" {
		t.Fatalf("got %+v, want fresh draw when review question is gone", q)
	}
}

func TestNextEmptyRepository(t *testing.T) {
	sel := newSelector(&fakeRepo{}, 0.3, 7)
	state := learner.NewState("lena", "Lena")

	q, err := sel.Next(context.Background(), state, AllCategories, day)
	if err != nil {
		t.Fatal(err)
	}
	if q != nil {
		t.Errorf("got %+v, want nil for empty repository", q)
	}
}
