package live

import "codeorder/internal/quiz"

// Screen identifies what the live UI is showing.
type Screen int

const (
	// ScreenSelect lists the playable language and difficulty pairs.
	ScreenSelect Screen = iota
	// ScreenQuiz shows the current question.
	ScreenQuiz
	// ScreenResult shows the final score.
	ScreenResult
	// ScreenConfirm asks a yes/no question over the previous screen.
	ScreenConfirm
	// ScreenHelp explains the controls.
	ScreenHelp
	// ScreenGoodbye is shown after quitting.
	ScreenGoodbye
)

// ConfirmKind identifies the pending yes/no dialog.
type ConfirmKind int

const (
	// ConfirmNone means no dialog is open.
	ConfirmNone ConfirmKind = iota
	// ConfirmCancel asks whether to abandon the session.
	ConfirmCancel
	// ConfirmQuit asks whether to leave the game.
	ConfirmQuit
)

// State captures what the live UI renders.
type State struct {
	Screen Screen
	// Previous is the screen restored when a dialog or help closes.
	Previous       Screen
	Confirm        ConfirmKind
	Quiz           quiz.State
	SessionID      string
	Question       quiz.QuestionView
	HasQuestion    bool
	Order          []int
	Verdict        quiz.Verdict
	Correct        int
	ElapsedSeconds int
	Summary        *quiz.Summary
	Message        string
}
