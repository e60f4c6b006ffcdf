package store

import (
	"context"
	"fmt"

	"github.com/docdot/docdot/ent"
	entev "github.com/docdot/docdot/ent/answerevent"
)

// AnswerEventData captures one answered question for the event log.
type AnswerEventData struct {
	UserID     string
	SessionID  string
	QuestionID string
	Category   string
	Correct    bool
	IsReview   bool
	ResponseMs int
}

// AnswerLog appends answer events. The log is write-only from the
// engine's point of view; analytics live in the profile snapshot.
type AnswerLog struct {
	client *ent.Client
}

// Append records one answer event.
func (l *AnswerLog) Append(ctx context.Context, data AnswerEventData) error {
	_, err := l.client.AnswerEvent.Create().
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetCategory(data.Category).
		SetCorrect(data.Correct).
		SetIsReview(data.IsReview).
		SetResponseMs(data.ResponseMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

// CountForUser returns how many answers a user has logged.
func (l *AnswerLog) CountForUser(ctx context.Context, userID string) (int, error) {
	n, err := l.client.AnswerEvent.Query().
		Where(entev.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answer events: %w", err)
	}
	return n, nil
}
