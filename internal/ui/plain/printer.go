package plain

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"codeorder/internal/placement"
	"codeorder/internal/quiz"
)

var _ quiz.Observer = (*Printer)(nil)

// Printer writes quiz events as text lines.
type Printer struct {
	out     io.Writer
	palette palette

	mu      sync.Mutex
	state   quiz.State
	changed chan struct{}
}

// NewPrinter builds a printer writing to out. Writes are serialized.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	return &Printer{
		out:     &lockedWriter{w: out},
		palette: paletteFor(out, noColor),
		changed: make(chan struct{}),
	}
}

// OnStateChanged records the state and wakes commands waiting for it.
func (p *Printer) OnStateChanged(state quiz.State) {
	p.mu.Lock()
	p.state = state
	close(p.changed)
	p.changed = make(chan struct{})
	p.mu.Unlock()
}

// OnQuestionChanged prints the prompt and the numbered blocks.
func (p *Printer) OnQuestionChanged(view quiz.QuestionView) {
	var b strings.Builder
	b.WriteString(p.palette.apply(styleTitle, quiz.FormatProgress(view.Index, view.Total)+" ("+view.Selection.String()+")"))
	b.WriteString("\n" + view.Prompt + "\n")
	for i, fragment := range view.Fragments {
		fmt.Fprintf(&b, "  [%d] %s\n", i+1, fragment)
	}
	fmt.Fprintf(&b, "Slots: %d", view.SlotCount)
	p.println(styleDefault, b.String())
}

// OnPlacementChanged prints the slot contents.
func (p *Printer) OnPlacementChanged(order []int) {
	p.println(styleDefault, "Slots: "+formatOrder(order))
}

// OnEvaluated prints the verdict.
func (p *Printer) OnEvaluated(result quiz.Evaluation) {
	if result.Correct {
		p.println(styleCorrect, "Correct!")
		return
	}
	p.println(styleIncorrect, "Not quite. Try again!")
}

// OnTimerTick is silent; the timer is printed by the show command.
func (p *Printer) OnTimerTick(int) {}

// OnQuizComplete prints the final score.
func (p *Printer) OnQuizComplete(summary quiz.Summary) {
	p.println(styleTitle, "Quiz complete!")
	p.println(styleDefault, quiz.FormatScore(summary.Correct, summary.Total))
	p.println(styleDefault, quiz.FormatFinalTime(summary.Elapsed))
	p.println(styleMuted, "Type retry to play again.")
}

// OnQuit prints the goodbye lines.
func (p *Printer) OnQuit() {
	p.println(styleTitle, "Thanks for playing!")
	p.println(styleDefault, "Come back soon!")
}

// Notice prints a message that did not come from the controller.
func (p *Printer) Notice(message string) {
	p.println(styleNotice, message)
}

// Println prints an unstyled line.
func (p *Printer) Println(text string) {
	p.println(styleDefault, text)
}

// current returns the last state and a channel closed on the next change.
func (p *Printer) current() (quiz.State, <-chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.changed
}

func (p *Printer) println(s style, text string) {
	fmt.Fprintln(p.out, p.palette.apply(s, text))
}

// formatOrder renders slots as "1:[2] 2:__ 3:__" with 1-based block numbers.
func formatOrder(order []int) string {
	parts := make([]string, len(order))
	for slot, fragment := range order {
		if fragment == placement.Empty {
			parts[slot] = fmt.Sprintf("%d:__", slot+1)
			continue
		}
		parts[slot] = fmt.Sprintf("%d:[%d]", slot+1, fragment+1)
	}
	return strings.Join(parts, " ")
}
