package quiz

import (
	quizpkg "github.com/docdot/docdot/internal/quiz"
)

// questionReadyMsg is sent when the next question has been selected.
type questionReadyMsg struct {
	Question *quizpkg.Question
	Err      error
}

// persistDoneMsg is sent when saving the answer outcome completed.
type persistDoneMsg struct {
	Err error
}
