package live

import (
	"github.com/charmbracelet/bubbles/key"

	"codeorder/internal/placement"
)

// keyMap holds every binding the live UI reacts to.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Start    key.Binding
	Fragment key.Binding
	Tap      key.Binding
	Grab     key.Binding
	Pool     key.Binding
	Drop     key.Binding
	Cancel   key.Binding
	Retry    key.Binding
	Back     key.Binding
	Yes      key.Binding
	No       key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceEnd key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Start:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Fragment: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-9", "tap block")),
		Tap:      key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "tap highlighted")),
		Grab:     key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "pick/drop")),
		Pool:     key.NewBinding(key.WithKeys("backspace", "x"), key.WithHelp("x", "back to pool")),
		Drop:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "let go")),
		Cancel:   key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "restart")),
		Retry:    key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "play again")),
		Back:     key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back to start")),
		Yes:      key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "yes")),
		No:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceEnd: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// bindings adapts a screen's key list to help.KeyMap.
type bindings struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindings) ShortHelp() []key.Binding  { return b.short }
func (b bindings) FullHelp() [][]key.Binding { return b.full }

// helpFor returns the bindings shown for a screen and input mode.
func (k keyMap) helpFor(screen Screen, input placement.Mode, dragging bool) bindings {
	switch screen {
	case ScreenSelect:
		return bindings{short: []key.Binding{k.Up, k.Down, k.Start, k.Help, k.Quit}}
	case ScreenQuiz:
		if input == placement.ModeDrag {
			if dragging {
				return bindings{
					short: []key.Binding{k.Left, k.Right, k.Grab, k.Pool, k.Drop},
					full:  [][]key.Binding{{k.Left, k.Right, k.Grab}, {k.Pool, k.Drop, k.Quit}},
				}
			}
			return bindings{
				short: []key.Binding{k.Left, k.Right, k.Grab, k.Pool, k.Cancel, k.Help, k.Quit},
				full:  [][]key.Binding{{k.Left, k.Right, k.Grab, k.Pool}, {k.Cancel, k.Help, k.Quit}},
			}
		}
		return bindings{
			short: []key.Binding{k.Fragment, k.Left, k.Right, k.Tap, k.Cancel, k.Help, k.Quit},
			full:  [][]key.Binding{{k.Fragment, k.Left, k.Right, k.Tap}, {k.Cancel, k.Help, k.Quit}},
		}
	case ScreenResult:
		return bindings{short: []key.Binding{k.Retry, k.Back, k.Quit}}
	case ScreenConfirm:
		return bindings{short: []key.Binding{k.Yes, k.No}}
	case ScreenHelp:
		return bindings{short: []key.Binding{k.Back}}
	default:
		return bindings{}
	}
}
