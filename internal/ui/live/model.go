package live

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeorder/internal/placement"
	"codeorder/internal/question"
	"codeorder/internal/quiz"
)

// Player is the part of the quiz controller the live UI drives.
type Player interface {
	placement.Target
	Start(selection question.Selection) error
	Retry() error
	Cancel()
	Quit()
	Bank() *question.Bank
	SessionSize() int
}

// Options configures the live UI model.
type Options struct {
	NoColor      bool
	Input        placement.Mode
	Default      question.Selection
	GoodbyeDelay time.Duration
}

// Model renders the quiz using Bubble Tea.
type Model struct {
	state        State
	player       Player
	events       <-chan Event
	keys         keyMap
	help         help.Model
	table        table.Model
	selections   []question.Selection
	input        placement.Mode
	tap          *placement.Tap
	drag         *placement.Drag
	cursor       int
	noColor      bool
	goodbyeDelay time.Duration
	quitting     bool
}

// NewModel constructs a live UI model for a player and its event stream.
func NewModel(player Player, events <-chan Event, opts Options) Model {
	goodbyeDelay := opts.GoodbyeDelay
	if goodbyeDelay <= 0 {
		goodbyeDelay = 1500 * time.Millisecond
	}
	selections := playableSelections(player.Bank())
	t := table.New(
		table.WithColumns(selectionColumns()),
		table.WithRows(selectionRows(player.Bank(), selections, player.SessionSize())),
		table.WithFocused(true),
		table.WithHeight(min(max(len(selections), 1), 10)),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	for i, selection := range selections {
		if selection == question.NewSelection(opts.Default.Language, opts.Default.Difficulty) {
			t.SetCursor(i)
		}
	}
	return Model{
		state:        State{Screen: ScreenSelect},
		player:       player,
		events:       events,
		keys:         defaultKeyMap(),
		help:         help.New(),
		table:        t,
		selections:   selections,
		input:        opts.Input,
		tap:          placement.NewTap(player),
		drag:         placement.NewDrag(player),
		noColor:      opts.NoColor,
		goodbyeDelay: goodbyeDelay,
	}
}

// Init waits for the first controller event.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update consumes controller events and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		m.table.SetWidth(min(typed.Width, tableWidth))
		return m, nil
	case EventMsg:
		m = m.applyEvent(typed.Event)
		next := waitForEvent(m.events)
		if m.state.Screen == ScreenGoodbye && !m.quitting {
			m.quitting = true
			return m, tea.Batch(next, goodbye(m.goodbyeDelay))
		}
		return m, next
	case goodbyeMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	parts := []string{renderHeader(m.state, m.noColor)}
	switch m.state.Screen {
	case ScreenSelect:
		parts = append(parts, renderSelect(m.table.View(), len(m.selections), m.noColor))
	case ScreenQuiz:
		parts = append(parts, renderQuiz(m.state, m.quizCursor(), m.noColor))
	case ScreenResult:
		parts = append(parts, renderResult(m.state, m.noColor))
	case ScreenConfirm:
		parts = append(parts, renderConfirm(m.state.Confirm, m.noColor))
	case ScreenHelp:
		full := m.help
		full.ShowAll = true
		parts = append(parts, renderHelp(m.input, full.View(m.keys.helpFor(ScreenQuiz, m.input, false)), m.noColor))
	case ScreenGoodbye:
		return renderGoodbye(m.noColor)
	}
	if m.state.Message != "" {
		parts = append(parts, renderMessage(m.state.Message, m.noColor))
	}
	parts = append(parts, m.help.View(m.keys.helpFor(m.state.Screen, m.input, m.drag.Dragging())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// State returns the rendered UI state.
func (m Model) State() State {
	return m.state
}

// EventMsg wraps a controller event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// goodbyeMsg ends the program after the goodbye screen.
type goodbyeMsg struct{}

// waitForEvent blocks until a UI event is available.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}

// goodbye exits once the goodbye screen has been visible for delay.
func goodbye(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return goodbyeMsg{} })
}

// applyEvent reduces an event and resets gesture state on new questions.
func (m Model) applyEvent(event Event) Model {
	m.state = Reduce(m.state, event)
	switch event.Kind {
	case EventQuestionChanged:
		m.drag.Cancel()
		m.cursor = 0
	case EventStateChanged:
		if event.State != quiz.Running {
			m.drag.Cancel()
		}
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceEnd) {
		m.player.Quit()
		m.state = Reduce(m.state, Event{Kind: EventQuit})
		m.quitting = true
		return m, tea.Quit
	}
	m.state.Message = ""
	switch m.state.Screen {
	case ScreenSelect:
		return m.handleSelectKey(msg)
	case ScreenQuiz:
		return m.handleQuizKey(msg), nil
	case ScreenResult:
		return m.handleResultKey(msg), nil
	case ScreenConfirm:
		return m.handleConfirmKey(msg)
	case ScreenHelp:
		if key.Matches(msg, m.keys.Back, m.keys.Help, m.keys.Quit, m.keys.Start) {
			m.state = closeOverlay(m.state)
		}
		return m, nil
	case ScreenGoodbye:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.state = openHelp(m.state)
	case key.Matches(msg, m.keys.Quit):
		m.state = openDialog(m.state, ConfirmQuit)
	case key.Matches(msg, m.keys.Start):
		m.state.Message = m.startSelected()
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startSelected starts the highlighted selection and returns a message for the player on failure.
func (m Model) startSelected() string {
	if len(m.selections) == 0 {
		return quiz.FormatStartError(quiz.ErrBankNotLoaded)
	}
	cursor := min(max(m.table.Cursor(), 0), len(m.selections)-1)
	if err := m.player.Start(m.selections[cursor]); err != nil {
		return quiz.FormatStartError(err)
	}
	return ""
}

func (m Model) handleQuizKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.state = openHelp(m.state)
	case key.Matches(msg, m.keys.Quit):
		m.state = openDialog(m.state, ConfirmQuit)
	case m.input == placement.ModeDrag:
		return m.handleDragKey(msg)
	case key.Matches(msg, m.keys.Fragment):
		if fragment, ok := m.fragmentForKey(msg); ok {
			m.tap.Tap(fragment)
			m.cursor = fragment
		}
	case key.Matches(msg, m.keys.Left):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor = min(m.cursor+1, max(m.cursorLimit()-1, 0))
	case key.Matches(msg, m.keys.Tap):
		if m.state.Quiz == quiz.Running && m.cursor < len(m.state.Question.Fragments) {
			m.tap.Tap(m.cursor)
		}
	case key.Matches(msg, m.keys.Cancel):
		m.state = openDialog(m.state, ConfirmCancel)
	}
	return m
}

// handleDragKey moves the cursor over blocks, or over slots while a block is held.
func (m Model) handleDragKey(msg tea.KeyMsg) Model {
	dragging := m.drag.Dragging()
	switch {
	case key.Matches(msg, m.keys.Fragment):
		if fragment, ok := m.fragmentForKey(msg); ok {
			m.drag.Pick(fragment)
			m.cursor = m.slotCursorFor(fragment)
		}
	case key.Matches(msg, m.keys.Left):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor = min(m.cursor+1, max(m.cursorLimit()-1, 0))
	case key.Matches(msg, m.keys.Grab):
		if dragging {
			fragment := m.drag.Holding()
			m.drag.DropOnSlot(m.cursor)
			m.cursor = fragment
		} else if m.cursor < len(m.state.Question.Fragments) {
			fragment := m.cursor
			m.drag.Pick(fragment)
			m.cursor = m.slotCursorFor(fragment)
		}
	case key.Matches(msg, m.keys.Pool):
		if dragging {
			fragment := m.drag.Holding()
			m.drag.DropOnPool()
			m.cursor = fragment
		} else if m.cursor < len(m.state.Question.Fragments) {
			m.drag.Pick(m.cursor)
			m.drag.DropOnPool()
		}
	case dragging && key.Matches(msg, m.keys.Drop):
		fragment := m.drag.Holding()
		m.drag.Cancel()
		m.cursor = fragment
	case key.Matches(msg, m.keys.Cancel):
		m.state = openDialog(m.state, ConfirmCancel)
	}
	return m
}

func (m Model) handleResultKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Retry):
		if err := m.player.Retry(); err != nil {
			m.state.Message = quiz.FormatStartError(err)
		}
	case key.Matches(msg, m.keys.Back):
		m.player.Cancel()
	case key.Matches(msg, m.keys.Help):
		m.state = openHelp(m.state)
	case key.Matches(msg, m.keys.Quit):
		m.state = openDialog(m.state, ConfirmQuit)
	}
	return m
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		kind := m.state.Confirm
		m.state = closeOverlay(m.state)
		switch kind {
		case ConfirmCancel:
			m.drag.Cancel()
			m.player.Cancel()
		case ConfirmQuit:
			m.player.Quit()
			m.state = Reduce(m.state, Event{Kind: EventQuit})
			m.quitting = true
			return m, goodbye(m.goodbyeDelay)
		}
	case key.Matches(msg, m.keys.No):
		m.state = closeOverlay(m.state)
	}
	return m, nil
}

// fragmentForKey maps 1-9 to blocks 0-8 and 0 to block 9.
func (m Model) fragmentForKey(msg tea.KeyMsg) (int, bool) {
	if m.state.Quiz != quiz.Running || !m.state.HasQuestion {
		return 0, false
	}
	text := msg.String()
	if len(text) != 1 || text[0] < '0' || text[0] > '9' {
		return 0, false
	}
	fragment := int(text[0]-'0') - 1
	if fragment < 0 {
		fragment = 9
	}
	if fragment >= len(m.state.Question.Fragments) {
		return 0, false
	}
	return fragment, true
}

// slotCursorFor returns the slot holding fragment, else the first empty slot.
func (m Model) slotCursorFor(fragment int) int {
	first := -1
	for slot, held := range m.state.Order {
		if held == fragment {
			return slot
		}
		if held == placement.Empty && first < 0 {
			first = slot
		}
	}
	return max(first, 0)
}

func (m Model) cursorLimit() int {
	if m.drag.Dragging() {
		return m.state.Question.SlotCount
	}
	return len(m.state.Question.Fragments)
}

// quizCursor describes the block or slot cursor for rendering.
func (m Model) quizCursor() cursorView {
	if m.drag.Dragging() {
		return cursorView{Fragment: -1, Slot: m.cursor, Holding: m.drag.Holding()}
	}
	return cursorView{Fragment: m.cursor, Slot: -1, Holding: placement.Empty}
}
