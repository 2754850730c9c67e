package live

import (
	"slices"

	"codeorder/internal/placement"
	"codeorder/internal/quiz"
)

// Reduce applies a controller event to the UI state.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventStateChanged:
		state.Quiz = event.State
		switch event.State {
		case quiz.Idle:
			state.HasQuestion = false
			state.Order = nil
			state.Summary = nil
			state = show(state, ScreenSelect)
		case quiz.Running, quiz.Evaluating:
			state = show(state, ScreenQuiz)
		case quiz.Complete:
			state.HasQuestion = false
			state = show(state, ScreenResult)
		}
	case EventQuestionChanged:
		if event.Question.SessionID != state.SessionID {
			state.SessionID = event.Question.SessionID
			state.Correct = 0
			state.ElapsedSeconds = 0
			state.Summary = nil
		}
		state.Question = event.Question
		state.HasQuestion = true
		state.Order = emptyOrder(event.Question.SlotCount)
		state.Verdict = quiz.Pending
		state.Message = ""
		state = show(state, ScreenQuiz)
	case EventPlacementChanged:
		state.Order = slices.Clone(event.Order)
		if state.Verdict == quiz.Incorrect && slices.Contains(state.Order, placement.Empty) {
			state.Verdict = quiz.Pending
		}
	case EventEvaluated:
		if event.Evaluation.Correct {
			state.Verdict = quiz.Correct
			state.Correct++
		} else {
			state.Verdict = quiz.Incorrect
		}
	case EventTimerTick:
		state.ElapsedSeconds = event.ElapsedSeconds
	case EventQuizComplete:
		summary := event.Summary
		state.Summary = &summary
		state.Correct = summary.Correct
		state.ElapsedSeconds = summary.ElapsedSeconds()
		state = show(state, ScreenResult)
	case EventQuit:
		state.Screen = ScreenGoodbye
		state.Confirm = ConfirmNone
	}
	return state
}

// show switches screens, deferring the switch while a dialog or help is open.
func show(state State, screen Screen) State {
	switch state.Screen {
	case ScreenGoodbye:
		return state
	case ScreenConfirm, ScreenHelp:
		state.Previous = screen
	default:
		state.Screen = screen
	}
	return state
}

// openDialog shows a yes/no dialog over the current screen.
func openDialog(state State, kind ConfirmKind) State {
	if state.Screen == ScreenConfirm || state.Screen == ScreenGoodbye {
		return state
	}
	if state.Screen != ScreenHelp {
		state.Previous = state.Screen
	}
	state.Screen = ScreenConfirm
	state.Confirm = kind
	return state
}

// openHelp shows the help screen over the current screen.
func openHelp(state State) State {
	if state.Screen == ScreenHelp || state.Screen == ScreenConfirm || state.Screen == ScreenGoodbye {
		return state
	}
	state.Previous = state.Screen
	state.Screen = ScreenHelp
	return state
}

// closeOverlay returns from a dialog or help to the screen underneath.
func closeOverlay(state State) State {
	if state.Screen != ScreenConfirm && state.Screen != ScreenHelp {
		return state
	}
	state.Screen = state.Previous
	state.Confirm = ConfirmNone
	return state
}

func emptyOrder(slotCount int) []int {
	order := make([]int, slotCount)
	for i := range order {
		order[i] = placement.Empty
	}
	return order
}
