package live

import (
	"context"
	"io"
	"os"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"codeorder/internal/quiz"
)

var _ quiz.Observer = (*Controller)(nil)

// Controller forwards quiz events to the live UI and runs the Bubble Tea program.
type Controller struct {
	events chan Event
	opts   Options
	mu     sync.Mutex
	closed bool
}

// New builds a controller whose observer methods can be wired before the UI runs.
func New(opts Options) *Controller {
	return &Controller{events: make(chan Event, 256), opts: opts}
}

// Run shows the UI until the player quits or ctx is cancelled.
func (c *Controller) Run(ctx context.Context, player Player, stdin io.Reader, stdout io.Writer) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	model := NewModel(player, c.events, c.opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	c.Close()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Close stops event delivery; a running UI exits.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.events)
}

// OnStateChanged forwards state transitions to the UI.
func (c *Controller) OnStateChanged(state quiz.State) {
	c.send(Event{Kind: EventStateChanged, State: state})
}

// OnQuestionChanged forwards a newly loaded question to the UI.
func (c *Controller) OnQuestionChanged(view quiz.QuestionView) {
	c.send(Event{Kind: EventQuestionChanged, Question: view})
}

// OnPlacementChanged forwards the slot contents to the UI.
func (c *Controller) OnPlacementChanged(order []int) {
	c.send(Event{Kind: EventPlacementChanged, Order: slices.Clone(order)})
}

// OnEvaluated forwards a verdict to the UI.
func (c *Controller) OnEvaluated(result quiz.Evaluation) {
	c.send(Event{Kind: EventEvaluated, Evaluation: result})
}

// OnTimerTick forwards the elapsed seconds to the UI.
func (c *Controller) OnTimerTick(elapsedSeconds int) {
	c.send(Event{Kind: EventTimerTick, ElapsedSeconds: elapsedSeconds})
}

// OnQuizComplete forwards the final score to the UI.
func (c *Controller) OnQuizComplete(summary quiz.Summary) {
	c.send(Event{Kind: EventQuizComplete, Summary: summary})
}

// OnQuit forwards the quit signal to the UI.
func (c *Controller) OnQuit() {
	c.send(Event{Kind: EventQuit})
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
