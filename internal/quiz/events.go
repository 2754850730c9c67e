package quiz

import (
	"time"

	"codeorder/internal/question"
)

// QuestionView describes the question a presentation layer should show.
type QuestionView struct {
	SessionID string
	Selection question.Selection
	Index     int
	Total     int
	Prompt    string
	Fragments []string
	SlotCount int
}

// Evaluation reports the verdict for a filled slot set.
type Evaluation struct {
	Index   int
	Order   []int
	Correct bool
}

// Summary reports the result of a finished session.
type Summary struct {
	SessionID string
	Selection question.Selection
	Correct   int
	Total     int
	Elapsed   time.Duration
}

// ElapsedSeconds returns the elapsed time truncated to whole seconds.
func (s Summary) ElapsedSeconds() int {
	return int(s.Elapsed / time.Second)
}

// Observer receives controller events for UI or logging.
//
// Callbacks run while the controller lock is held; implementations must not
// call back into the controller.
type Observer interface {
	// OnStateChanged signals a state transition.
	OnStateChanged(state State)
	// OnQuestionChanged delivers a newly loaded question.
	OnQuestionChanged(view QuestionView)
	// OnPlacementChanged delivers the current slot contents.
	OnPlacementChanged(order []int)
	// OnEvaluated delivers the verdict for a filled slot set.
	OnEvaluated(result Evaluation)
	// OnTimerTick delivers the elapsed whole seconds since start.
	OnTimerTick(elapsedSeconds int)
	// OnQuizComplete delivers the final score.
	OnQuizComplete(summary Summary)
	// OnQuit signals the player left the game.
	OnQuit()
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnStateChanged(State)           {}
func (NopObserver) OnQuestionChanged(QuestionView) {}
func (NopObserver) OnPlacementChanged([]int)       {}
func (NopObserver) OnEvaluated(Evaluation)         {}
func (NopObserver) OnTimerTick(int)                {}
func (NopObserver) OnQuizComplete(Summary)         {}
func (NopObserver) OnQuit()                        {}

// Observers fans events out to several observers in order.
type Observers []Observer

func (o Observers) OnStateChanged(state State) {
	for _, observer := range o {
		observer.OnStateChanged(state)
	}
}

func (o Observers) OnQuestionChanged(view QuestionView) {
	for _, observer := range o {
		observer.OnQuestionChanged(view)
	}
}

func (o Observers) OnPlacementChanged(order []int) {
	for _, observer := range o {
		observer.OnPlacementChanged(order)
	}
}

func (o Observers) OnEvaluated(result Evaluation) {
	for _, observer := range o {
		observer.OnEvaluated(result)
	}
}

func (o Observers) OnTimerTick(elapsedSeconds int) {
	for _, observer := range o {
		observer.OnTimerTick(elapsedSeconds)
	}
}

func (o Observers) OnQuizComplete(summary Summary) {
	for _, observer := range o {
		observer.OnQuizComplete(summary)
	}
}

func (o Observers) OnQuit() {
	for _, observer := range o {
		observer.OnQuit()
	}
}
