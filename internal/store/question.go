package store

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/docdot/docdot/ent"
	entq "github.com/docdot/docdot/ent/question"
	"github.com/docdot/docdot/internal/quiz"
)

// QuestionRepo serves questions from the bank. It implements
// quiz.Repository; an empty result is nil, not an error.
type QuestionRepo struct {
	client *ent.Client
	rng    *rand.Rand
}

// GetRandom returns a uniformly random question, filtered to category
// when non-empty. Returns nil when nothing matches the filter.
func (r *QuestionRepo) GetRandom(ctx context.Context, category string) (*quiz.Question, error) {
	q := r.client.Question.Query()
	if category != "" {
		q = q.Where(entq.Category(category))
	}

	count, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	row, err := q.Offset(r.rng.IntN(count)).Limit(1).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("pick question: %w", err)
	}
	if len(row) == 0 {
		return nil, nil
	}
	return toQuestion(row[0]), nil
}

// GetByID returns the question with the given bank id, or nil.
func (r *QuestionRepo) GetByID(ctx context.Context, id string) (*quiz.Question, error) {
	row, err := r.client.Question.Query().
		Where(entq.Qid(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("question %s: %w", id, err)
	}
	return toQuestion(row), nil
}

// GetByCategory returns all questions in a category.
func (r *QuestionRepo) GetByCategory(ctx context.Context, category string) ([]*quiz.Question, error) {
	rows, err := r.client.Question.Query().
		Where(entq.Category(category)).
		Order(ent.Asc(entq.FieldQid)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("questions in %s: %w", category, err)
	}

	out := make([]*quiz.Question, len(rows))
	for i, row := range rows {
		out[i] = toQuestion(row)
	}
	return out, nil
}

// Count returns the number of questions in the bank.
func (r *QuestionRepo) Count(ctx context.Context) (int, error) {
	return r.client.Question.Query().Count(ctx)
}

func toQuestion(row *ent.Question) *quiz.Question {
	return &quiz.Question{
		ID:            row.Qid,
		Text:          row.Text,
		Answer:        row.Answer,
		Explanation:   row.Explanation,
		AIExplanation: row.AiExplanation,
		References:    row.References,
		Category:      row.Category,
		Subcategory:   row.Subcategory,
	}
}
