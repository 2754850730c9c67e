package live

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codeorder/internal/placement"
	"codeorder/internal/question"
	"codeorder/internal/quiz"
	"codeorder/internal/testutil"
)

var pythonEasy = question.Selection{Language: "python", Difficulty: "easy"}

type harness struct {
	scheduler *testutil.ManualScheduler
	ui        *Controller
	model     Model
}

func newHarness(t *testing.T, questions, sessionSize int, input placement.Mode) *harness {
	t.Helper()
	bank := testutil.Bank(map[question.Selection]int{
		pythonEasy:                           questions,
		{Language: "go", Difficulty: "hard"}: 1,
	})
	return newHarnessWithBank(t, bank, sessionSize, input)
}

func newHarnessWithBank(t *testing.T, bank *question.Bank, sessionSize int, input placement.Mode) *harness {
	t.Helper()
	clock := testutil.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	scheduler := testutil.NewManualScheduler(clock)
	opts := Options{NoColor: true, Input: input, Default: pythonEasy}
	ui := New(opts)
	player := quiz.New(bank, quiz.Options{
		SessionSize: sessionSize,
		Clock:       clock,
		Scheduler:   scheduler,
		Observer:    ui,
	})
	return &harness{scheduler: scheduler, ui: ui, model: NewModel(player, ui.events, opts)}
}

// pump applies every queued controller event to the model.
func (h *harness) pump() {
	for {
		select {
		case event := <-h.ui.events:
			next, _ := h.model.Update(EventMsg{Event: event})
			h.model = next.(Model)
		default:
			return
		}
	}
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		next, _ := h.model.Update(keyMsg(k))
		h.model = next.(Model)
		h.pump()
	}
}

func (h *harness) advance(d time.Duration) {
	h.scheduler.Advance(d)
	h.pump()
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// TestTapFlowCompletesQuiz plays a one-question session with number keys.
func TestTapFlowCompletesQuiz(t *testing.T) {
	h := newHarness(t, 2, 1, placement.ModeTap)
	if !strings.Contains(h.model.View(), quiz.StartPrompt) {
		t.Fatalf("expected start prompt, got:\n%s", h.model.View())
	}
	h.press("enter")
	if h.model.State().Screen != ScreenQuiz {
		t.Fatalf("expected quiz screen, got %v", h.model.State().Screen)
	}
	h.press("2", "1", "3")
	if h.model.State().Quiz != quiz.Evaluating {
		t.Fatalf("expected evaluating, got %s", h.model.State().Quiz)
	}
	h.advance(quiz.DefaultEvaluationDelay)
	if !strings.Contains(h.model.View(), "Correct!") {
		t.Fatalf("expected correct feedback, got:\n%s", h.model.View())
	}
	h.advance(quiz.DefaultAdvanceDelay)
	state := h.model.State()
	if state.Screen != ScreenResult || state.Summary == nil || state.Summary.Correct != 1 {
		t.Fatalf("expected result screen, got %+v", state)
	}
	out := h.model.View()
	for _, want := range []string{"Score: 1 / 1", "Time: 0m 1s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

// TestTapCursorReachesBlocksPastTen places blocks that have no number key.
func TestTapCursorReachesBlocksPastTen(t *testing.T) {
	fragments := make([]string, 11)
	order := make([]int, 11)
	for i := range fragments {
		fragments[i] = fmt.Sprintf("line %d", i+1)
		order[i] = i
	}
	bank := question.NewBank(question.Document{
		"python": {"easy": {{Prompt: "Long", Fragments: fragments, SlotCount: 11, CorrectOrder: order}}},
	})
	h := newHarnessWithBank(t, bank, 1, placement.ModeTap)
	h.press("enter")
	h.press("1", "2", "3", "4", "5", "6", "7", "8", "9", "0")
	if got := h.model.State().Order[10]; got != placement.Empty {
		t.Fatalf("expected last slot empty, got %d", got)
	}
	h.press("right", "space")
	if h.model.State().Quiz != quiz.Evaluating {
		t.Fatalf("expected evaluating after the eleventh block, got %s with %v", h.model.State().Quiz, h.model.State().Order)
	}
	h.advance(quiz.DefaultEvaluationDelay)
	if !strings.Contains(h.model.View(), "Correct!") {
		t.Fatalf("expected correct feedback, got:\n%s", h.model.View())
	}
}

// TestTapTogglesPlacedBlock verifies a second press returns the block to the pool.
func TestTapTogglesPlacedBlock(t *testing.T) {
	h := newHarness(t, 2, 1, placement.ModeTap)
	h.press("enter", "3")
	if h.model.State().Order[0] != 2 {
		t.Fatalf("expected block 3 in slot 1, got %v", h.model.State().Order)
	}
	h.press("3")
	if h.model.State().Order[0] != -1 {
		t.Fatalf("expected slot 1 empty, got %v", h.model.State().Order)
	}
	h.press("9")
	if h.model.State().Order[0] != -1 {
		t.Fatalf("expected unknown block to be ignored, got %v", h.model.State().Order)
	}
}

// TestDragFlowPlacesBlocks plays a question with the cursor.
func TestDragFlowPlacesBlocks(t *testing.T) {
	h := newHarness(t, 2, 1, placement.ModeDrag)
	h.press("enter")
	h.press("right", "space", "space")
	if h.model.State().Order[0] != 1 {
		t.Fatalf("expected block 2 in slot 1, got %v", h.model.State().Order)
	}
	h.press("left", "space", "space")
	h.press("right", "right", "space")
	if !strings.Contains(h.model.View(), "Holding [3]") {
		t.Fatalf("expected held block, got:\n%s", h.model.View())
	}
	h.press("space")
	if h.model.State().Quiz != quiz.Evaluating {
		t.Fatalf("expected evaluating, got %s (order %v)", h.model.State().Quiz, h.model.State().Order)
	}
	h.advance(quiz.DefaultEvaluationDelay)
	if h.model.State().Verdict != quiz.Correct {
		t.Fatalf("expected correct verdict, got %s", h.model.State().Verdict)
	}
}

// TestDragBackToPool verifies x returns a held block.
func TestDragBackToPool(t *testing.T) {
	h := newHarness(t, 2, 1, placement.ModeDrag)
	h.press("enter", "space", "space")
	if h.model.State().Order[0] != 0 {
		t.Fatalf("expected block 1 in slot 1, got %v", h.model.State().Order)
	}
	h.press("space", "x")
	if h.model.State().Order[0] != -1 {
		t.Fatalf("expected block back in pool, got %v", h.model.State().Order)
	}
	h.press("2", "esc")
	if h.model.State().Screen != ScreenQuiz {
		t.Fatalf("expected esc to let go of the block, got %v", h.model.State().Screen)
	}
}

// TestStartWithTooFewQuestions shows the shortfall message.
func TestStartWithTooFewQuestions(t *testing.T) {
	h := newHarness(t, 3, 20, placement.ModeTap)
	h.press("enter")
	if h.model.State().Screen != ScreenSelect {
		t.Fatalf("expected to stay on select, got %v", h.model.State().Screen)
	}
	if !strings.Contains(h.model.View(), "Not enough questions for python easy!") {
		t.Fatalf("expected shortfall message, got:\n%s", h.model.View())
	}
}

// TestCancelDialogReturnsToSelect verifies confirming restart ends the session.
func TestCancelDialogReturnsToSelect(t *testing.T) {
	h := newHarness(t, 2, 1, placement.ModeTap)
	h.press("enter", "c")
	if h.model.State().Screen != ScreenConfirm {
		t.Fatalf("expected dialog, got %v", h.model.State().Screen)
	}
	if !strings.Contains(h.model.View(), "Restart quiz and go back to start?") {
		t.Fatalf("expected restart question, got:\n%s", h.model.View())
	}
	h.press("n")
	if h.model.State().Screen != ScreenQuiz {
		t.Fatalf("expected quiz after declining, got %v", h.model.State().Screen)
	}
	h.press("c", "y")
	if h.model.State().Screen != ScreenSelect {
		t.Fatalf("expected select screen, got %v", h.model.State().Screen)
	}
}

// TestQuitShowsGoodbye verifies the quit dialog leads to the goodbye screen.
func TestQuitShowsGoodbye(t *testing.T) {
	h := newHarness(t, 2, 1, placement.ModeTap)
	h.press("q")
	if !strings.Contains(h.model.View(), "Really quit the game?") {
		t.Fatalf("expected quit question, got:\n%s", h.model.View())
	}
	next, cmd := h.model.Update(keyMsg("y"))
	h.model = next.(Model)
	if cmd == nil {
		t.Fatalf("expected goodbye timer")
	}
	h.pump()
	out := h.model.View()
	if !strings.Contains(out, "Thanks for playing!") || !strings.Contains(out, "Come back soon!") {
		t.Fatalf("expected goodbye, got:\n%s", out)
	}
	next, cmd = h.model.Update(goodbyeMsg{})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	_ = next
}

// TestHelpDependsOnInput verifies both help texts.
func TestHelpDependsOnInput(t *testing.T) {
	tap := newHarness(t, 2, 1, placement.ModeTap)
	tap.press("?")
	if !strings.Contains(tap.model.View(), placement.TapInstructions) {
		t.Fatalf("expected tap help, got:\n%s", tap.model.View())
	}
	tap.press("esc")
	if tap.model.State().Screen != ScreenSelect {
		t.Fatalf("expected help to close, got %v", tap.model.State().Screen)
	}

	drag := newHarness(t, 2, 1, placement.ModeDrag)
	drag.press("?")
	if !strings.Contains(drag.model.View(), placement.DragInstructions) || !strings.Contains(drag.model.View(), placement.GoalInstructions) {
		t.Fatalf("expected drag help, got:\n%s", drag.model.View())
	}
}

// TestRetryFromResult starts a new session with the same selection.
func TestRetryFromResult(t *testing.T) {
	h := newHarness(t, 2, 1, placement.ModeTap)
	h.press("enter", "2", "1", "3")
	h.advance(quiz.DefaultEvaluationDelay + quiz.DefaultAdvanceDelay)
	h.press("r")
	state := h.model.State()
	if state.Screen != ScreenQuiz || state.Correct != 0 || state.Question.Selection != pythonEasy {
		t.Fatalf("expected a fresh session, got %+v", state)
	}
}
