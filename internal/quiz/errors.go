package quiz

import (
	"errors"
	"fmt"

	"codeorder/internal/question"
)

var (
	// ErrInsufficientQuestions indicates a selection has fewer questions than a session needs.
	ErrInsufficientQuestions = errors.New("insufficient questions")
	// ErrBankNotLoaded indicates Start was called before a question bank was available.
	ErrBankNotLoaded = errors.New("questions not loaded yet")
	// ErrNoSelection indicates Retry was called before any session started.
	ErrNoSelection = errors.New("no previous selection")
)

// InsufficientQuestionsError reports the shortfall for a selection.
type InsufficientQuestionsError struct {
	Selection question.Selection
	Have      int
	Need      int
}

// Error returns the player-facing message.
func (err *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("Not enough questions for %s %s! (have %d, need %d)", err.Selection.Language, err.Selection.Difficulty, err.Have, err.Need)
}

// Is matches ErrInsufficientQuestions.
func (err *InsufficientQuestionsError) Is(target error) bool {
	return target == ErrInsufficientQuestions
}
