package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"codeorder/internal/placement"
	"codeorder/internal/question"
	"codeorder/internal/quiz"
)

const tableWidth = 48

// cursorView is the drag cursor position. -1 hides a cursor.
type cursorView struct {
	Fragment int
	Slot     int
	Holding  int
}

// playableSelections lists every selection in the bank.
func playableSelections(bank *question.Bank) []question.Selection {
	if bank == nil {
		return nil
	}
	return bank.Selections()
}

func selectionColumns() []table.Column {
	return []table.Column{
		{Title: "Language", Width: 16},
		{Title: "Difficulty", Width: 12},
		{Title: "Questions", Width: 10},
	}
}

// selectionRows renders one row per selection, flagging pools smaller than a session.
func selectionRows(bank *question.Bank, selections []question.Selection, sessionSize int) []table.Row {
	rows := make([]table.Row, 0, len(selections))
	for _, selection := range selections {
		count := bank.Count(selection)
		label := fmtInt(count)
		if count < sessionSize {
			label += " (too few)"
		}
		rows = append(rows, table.Row{selection.Language, selection.Difficulty, label})
	}
	return rows
}

// tableStyles returns table styles for the selection screen.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle().Bold(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// keyLabel returns the number key for a block, 1-9 then 0.
func keyLabel(fragment int) string {
	if fragment == 9 {
		return "0"
	}
	return fmtInt(fragment + 1)
}

// formatFragment flattens a code block to one display line.
func formatFragment(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	const limit = 72
	if ansi.StringWidth(normalized) <= limit {
		return normalized
	}
	return ansi.Truncate(normalized, limit, "...")
}

// pooled returns the fragments not sitting in any slot, ascending.
func pooled(order []int, fragments int) []int {
	placed := make([]bool, fragments)
	for _, fragment := range order {
		if fragment >= 0 && fragment < fragments {
			placed[fragment] = true
		}
	}
	pool := make([]int, 0, fragments)
	for fragment, inSlot := range placed {
		if !inSlot {
			pool = append(pool, fragment)
		}
	}
	return pool
}

// formatVerdict renders the feedback line for the current attempt.
func formatVerdict(verdict quiz.Verdict, quizState quiz.State, order []int) string {
	switch verdict {
	case quiz.Correct:
		return "Correct!"
	case quiz.Incorrect:
		return "Not quite. Try again!"
	}
	if quizState == quiz.Evaluating {
		return "Checking..."
	}
	filled := 0
	for _, fragment := range order {
		if fragment != placement.Empty {
			filled++
		}
	}
	return fmtInt(filled) + " / " + fmtInt(len(order)) + " slots filled"
}

// confirmText returns the question asked by a dialog.
func confirmText(kind ConfirmKind) string {
	switch kind {
	case ConfirmCancel:
		return "Restart quiz and go back to start?"
	case ConfirmQuit:
		return "Really quit the game?"
	default:
		return ""
	}
}
