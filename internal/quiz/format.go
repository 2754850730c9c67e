package quiz

import (
	"errors"
	"fmt"
	"time"
)

// StartPrompt is shown on the selection screen.
const StartPrompt = "Ready to code? Choose and tap Start!"

// FormatTicker renders the running timer line.
func FormatTicker(elapsedSeconds int) string {
	return fmt.Sprintf("Time: %ds", elapsedSeconds)
}

// FormatScore renders the final score line.
func FormatScore(correct, total int) string {
	return fmt.Sprintf("Score: %d / %d", correct, total)
}

// FormatFinalTime renders the final elapsed time as minutes and seconds.
func FormatFinalTime(elapsed time.Duration) string {
	seconds := int(elapsed / time.Second)
	return fmt.Sprintf("Time: %dm %ds", seconds/60, seconds%60)
}

// FormatProgress renders the question counter, 1-based.
func FormatProgress(index, total int) string {
	return fmt.Sprintf("Question %d / %d", index+1, total)
}

// FormatStartError renders a Start or Retry failure for the player.
func FormatStartError(err error) string {
	var insufficient *InsufficientQuestionsError
	switch {
	case errors.As(err, &insufficient):
		return fmt.Sprintf("Not enough questions for %s %s!", insufficient.Selection.Language, insufficient.Selection.Difficulty)
	case errors.Is(err, ErrBankNotLoaded):
		return "Questions not loaded yet. Try again in a second."
	default:
		return err.Error()
	}
}
