package live

import "codeorder/internal/quiz"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventStateChanged signals a controller state transition.
	EventStateChanged EventKind = iota
	// EventQuestionChanged delivers a newly loaded question.
	EventQuestionChanged
	// EventPlacementChanged delivers the current slot contents.
	EventPlacementChanged
	// EventEvaluated delivers the verdict for a filled slot set.
	EventEvaluated
	// EventTimerTick delivers the elapsed seconds.
	EventTimerTick
	// EventQuizComplete delivers the final score.
	EventQuizComplete
	// EventQuit signals the player left the game.
	EventQuit
)

// Event carries a UI update payload.
type Event struct {
	Kind           EventKind
	State          quiz.State
	Question       quiz.QuestionView
	Order          []int
	Evaluation     quiz.Evaluation
	ElapsedSeconds int
	Summary        quiz.Summary
}
