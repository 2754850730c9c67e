package quiz

import (
	"time"

	"codeorder/internal/question"
)

// State identifies the controller phase.
type State int

const (
	// Idle is the selection screen: no session exists.
	Idle State = iota
	// Running means a question is loaded and accepts placement input.
	Running
	// Evaluating covers the pauses between a full slot set and the next question or retry.
	Evaluating
	// Complete means every question of the session was answered.
	Complete
)

// String returns the state label.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Evaluating:
		return "evaluating"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one quiz attempt.
type Session struct {
	ID         string
	Selection  question.Selection
	Questions  []question.Question
	Index      int
	Correct    int
	StartedAt  time.Time
	Active     bool
	Generation uint64
}

// Verdict is the outcome of the most recent evaluation.
type Verdict int

const (
	// Pending means the current attempt has not been judged.
	Pending Verdict = iota
	// Correct means the slot order matched.
	Correct
	// Incorrect means the slot order did not match.
	Incorrect
)

// String returns the verdict label.
func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "pending"
	}
}

// Snapshot is a copy of the state a presentation layer renders from.
// QuestionIndex is the index of the question on screen, or -1.
type Snapshot struct {
	State         State
	SessionID     string
	Selection     question.Selection
	QuestionIndex int
	Total         int
	Correct       int
	Question      question.Question
	HasQuestion   bool
	Order         []int
	Pool          []int
	Verdict       Verdict
	Elapsed       time.Duration
	Summary       *Summary
}
