// Package quiz drives a timed arrange-the-fragments session.
//
// The Controller owns the session, the placement engine of the current
// question and every deferred callback. Deferred callbacks capture the
// session generation when scheduled and do nothing once it has moved on.
package quiz

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"codeorder/internal/placement"
	"codeorder/internal/question"
)

// Defaults match the pacing of the browser version of the game.
const (
	DefaultSessionSize     = 20
	DefaultEvaluationDelay = 600 * time.Millisecond
	DefaultAdvanceDelay    = 500 * time.Millisecond
	DefaultRetryDelay      = 700 * time.Millisecond
	DefaultTickInterval    = time.Second
)

// Options configures a Controller. Zero values fall back to the defaults.
type Options struct {
	SessionSize     int
	EvaluationDelay time.Duration
	AdvanceDelay    time.Duration
	RetryDelay      time.Duration
	TickInterval    time.Duration
	Clock           Clock
	Scheduler       Scheduler
	Rand            question.Rand
	Observer        Observer
	NewSessionID    func() string
}

// Controller is the quiz state machine.
type Controller struct {
	mu   sync.Mutex
	opts Options
	bank *question.Bank

	state      State
	generation uint64
	session    *Session
	engine     *placement.Engine
	shown      int
	verdict    Verdict
	summary    *Summary
	stopTicker func()

	lastSelection question.Selection
	hasSelection  bool
}

var _ placement.Target = (*Controller)(nil)

// New builds an idle controller. bank may be nil until SetBank is called.
func New(bank *question.Bank, opts Options) *Controller {
	if opts.SessionSize <= 0 {
		opts.SessionSize = DefaultSessionSize
	}
	if opts.EvaluationDelay <= 0 {
		opts.EvaluationDelay = DefaultEvaluationDelay
	}
	if opts.AdvanceDelay <= 0 {
		opts.AdvanceDelay = DefaultAdvanceDelay
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = SystemScheduler{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	if opts.NewSessionID == nil {
		opts.NewSessionID = uuid.NewString
	}
	return &Controller{opts: opts, bank: bank, shown: -1}
}

// SetBank installs the question bank once it has been loaded.
func (c *Controller) SetBank(bank *question.Bank) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bank = bank
}

// Bank returns the installed question bank.
func (c *Controller) Bank() *question.Bank {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bank
}

// SessionSize returns the number of questions per session.
func (c *Controller) SessionSize() int {
	return c.opts.SessionSize
}

// Start begins a new session for selection. On error nothing changes.
func (c *Controller) Start(selection question.Selection) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked(question.NewSelection(selection.Language, selection.Difficulty))
}

// Retry starts a new session with the last selection.
func (c *Controller) Retry() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasSelection {
		return ErrNoSelection
	}
	return c.startLocked(c.lastSelection)
}

func (c *Controller) startLocked(selection question.Selection) error {
	if c.bank == nil {
		return ErrBankNotLoaded
	}
	pool := c.bank.Questions(selection)
	if len(pool) < c.opts.SessionSize {
		return &InsufficientQuestionsError{Selection: selection, Have: len(pool), Need: c.opts.SessionSize}
	}
	selected, err := question.Sample(pool, c.opts.SessionSize, c.opts.Rand)
	if err != nil {
		return err
	}

	c.discardLocked()
	c.generation++
	c.session = &Session{
		ID:         c.opts.NewSessionID(),
		Selection:  selection,
		Questions:  selected,
		StartedAt:  c.opts.Clock.Now(),
		Active:     true,
		Generation: c.generation,
	}
	c.lastSelection = selection
	c.hasSelection = true

	generation := c.generation
	c.stopTicker = c.opts.Scheduler.Every(c.opts.TickInterval, func() { c.tick(generation) })
	c.loadQuestionLocked(0)
	return nil
}

// LoadQuestion shows question i, or completes the session when i is past the end.
// It does nothing when no session is active.
func (c *Controller) LoadQuestion(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadQuestionLocked(i)
}

func (c *Controller) loadQuestionLocked(i int) {
	if c.session == nil || !c.session.Active {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.session.Questions) {
		c.completeLocked()
		return
	}
	q := c.session.Questions[i]
	c.session.Index = i
	c.shown = i
	c.verdict = Pending
	c.engine = placement.New(len(q.Fragments), q.SlotCount)
	c.setStateLocked(Running)
	c.opts.Observer.OnQuestionChanged(QuestionView{
		SessionID: c.session.ID,
		Selection: c.session.Selection,
		Index:     i,
		Total:     len(c.session.Questions),
		Prompt:    q.Prompt,
		Fragments: append([]string(nil), q.Fragments...),
		SlotCount: q.SlotCount,
	})
	c.opts.Observer.OnPlacementChanged(c.engine.CurrentOrder())
}

// Place puts a fragment into an explicit empty slot.
func (c *Controller) Place(fragment, slot int) placement.Result {
	return c.apply(fragment, slot, func(e *placement.Engine) placement.Result { return e.Place(fragment, slot) })
}

// PlaceNext puts a fragment into the lowest empty slot.
func (c *Controller) PlaceNext(fragment int) placement.Result {
	return c.apply(fragment, placement.Empty, func(e *placement.Engine) placement.Result { return e.PlaceNext(fragment) })
}

// Remove returns a fragment to the pool.
func (c *Controller) Remove(fragment int) placement.Result {
	return c.apply(fragment, placement.Empty, func(e *placement.Engine) placement.Result { return e.Remove(fragment) })
}

// Toggle removes a placed fragment or places a pooled one.
func (c *Controller) Toggle(fragment int) placement.Result {
	return c.apply(fragment, placement.Empty, func(e *placement.Engine) placement.Result { return e.Toggle(fragment) })
}

func (c *Controller) apply(fragment, slot int, op func(*placement.Engine) placement.Result) placement.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running || c.engine == nil {
		return placement.Result{Outcome: placement.Ignored, Fragment: fragment, Slot: slot, Reason: placement.ErrNotRunning}
	}
	result := op(c.engine)
	if !result.Changed() {
		return result
	}
	c.opts.Observer.OnPlacementChanged(c.engine.CurrentOrder())
	if c.engine.IsComplete() {
		c.onPlacementCompleteLocked()
	}
	return result
}

// onPlacementCompleteLocked pauses before judging the filled slots.
func (c *Controller) onPlacementCompleteLocked() {
	c.setStateLocked(Evaluating)
	generation := c.generation
	c.opts.Scheduler.AfterFunc(c.opts.EvaluationDelay, func() { c.evaluate(generation) })
}

func (c *Controller) evaluate(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staleLocked(generation) || c.state != Evaluating {
		return
	}
	index := c.session.Index
	order := c.engine.CurrentOrder()
	correct := c.session.Questions[index].IsCorrect(order)
	if correct {
		c.verdict = Correct
		c.session.Correct++
		c.session.Index++
	} else {
		c.verdict = Incorrect
	}
	c.opts.Observer.OnEvaluated(Evaluation{Index: index, Order: order, Correct: correct})

	if correct {
		next := c.session.Index
		c.opts.Scheduler.AfterFunc(c.opts.AdvanceDelay, func() { c.advance(generation, next) })
		return
	}
	c.opts.Scheduler.AfterFunc(c.opts.RetryDelay, func() { c.retryQuestion(generation) })
}

func (c *Controller) advance(generation uint64, next int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staleLocked(generation) {
		return
	}
	c.loadQuestionLocked(next)
}

func (c *Controller) retryQuestion(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staleLocked(generation) || c.state != Evaluating {
		return
	}
	c.engine.ResetToPool()
	c.verdict = Pending
	c.setStateLocked(Running)
	c.opts.Observer.OnPlacementChanged(c.engine.CurrentOrder())
}

func (c *Controller) tick(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staleLocked(generation) {
		return
	}
	c.opts.Observer.OnTimerTick(int(c.elapsedLocked() / time.Second))
}

func (c *Controller) completeLocked() {
	c.session.Active = false
	c.stopTickerLocked()
	summary := Summary{
		SessionID: c.session.ID,
		Selection: c.session.Selection,
		Correct:   c.session.Correct,
		Total:     len(c.session.Questions),
		Elapsed:   c.opts.Clock.Now().Sub(c.session.StartedAt),
	}
	c.summary = &summary
	c.engine = nil
	c.setStateLocked(Complete)
	c.opts.Observer.OnQuizComplete(summary)
}

// Cancel abandons any session and returns to Idle.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discardLocked()
	c.generation++
	c.setStateLocked(Idle)
}

// Quit abandons any session and signals the presentation layer to exit.
func (c *Controller) Quit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discardLocked()
	c.generation++
	c.setStateLocked(Idle)
	c.opts.Observer.OnQuit()
}

func (c *Controller) discardLocked() {
	c.stopTickerLocked()
	c.session = nil
	c.engine = nil
	c.summary = nil
	c.shown = -1
	c.verdict = Pending
}

func (c *Controller) stopTickerLocked() {
	if c.stopTicker != nil {
		c.stopTicker()
		c.stopTicker = nil
	}
}

// staleLocked reports whether a callback scheduled under generation must be dropped.
func (c *Controller) staleLocked(generation uint64) bool {
	return generation != c.generation || c.session == nil || !c.session.Active
}

func (c *Controller) setStateLocked(state State) {
	if c.state == state {
		return
	}
	c.state = state
	c.opts.Observer.OnStateChanged(state)
}

func (c *Controller) elapsedLocked() time.Duration {
	if c.summary != nil {
		return c.summary.Elapsed
	}
	if c.session == nil {
		return 0
	}
	return c.opts.Clock.Now().Sub(c.session.StartedAt)
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Generation returns the current session generation.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Session returns a copy of the current session, or false when idle.
func (c *Controller) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Session{}, false
	}
	session := *c.session
	session.Questions = append([]question.Question(nil), c.session.Questions...)
	return session, true
}

// Snapshot copies the state a presentation layer needs.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		State:         c.state,
		QuestionIndex: c.shown,
		Verdict:       c.verdict,
		Elapsed:       c.elapsedLocked(),
	}
	if c.session != nil {
		snap.SessionID = c.session.ID
		snap.Selection = c.session.Selection
		snap.Total = len(c.session.Questions)
		snap.Correct = c.session.Correct
		if c.shown >= 0 && c.shown < len(c.session.Questions) && c.engine != nil {
			snap.Question = c.session.Questions[c.shown]
			snap.HasQuestion = true
		}
	}
	if c.engine != nil {
		snap.Order = c.engine.CurrentOrder()
		snap.Pool = c.engine.Pool()
	}
	if c.summary != nil {
		summary := *c.summary
		snap.Summary = &summary
	}
	return snap
}
