package live

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeorder/internal/placement"
	"codeorder/internal/quiz"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorCursor  = lipgloss.Color("201")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("220")
)

// renderHeader renders the title line with progress and timer during a session.
func renderHeader(state State, noColor bool) string {
	line := "codeorder"
	if state.HasQuestion || state.Screen == ScreenQuiz {
		line += " | " + state.Question.Selection.String() + " | " + quiz.FormatProgress(state.Question.Index, state.Question.Total) +
			" | " + quiz.FormatTicker(state.ElapsedSeconds)
	}
	return stylize(line, noColor, colorTitle)
}

// renderSelect renders the selection screen around the selection table.
func renderSelect(tableView string, selections int, noColor bool) string {
	lines := []string{"", quiz.StartPrompt, ""}
	if selections == 0 {
		lines = append(lines, stylize("The question bank is empty.", noColor, colorWarn))
	} else {
		lines = append(lines, tableView)
	}
	return strings.Join(lines, "\n")
}

// renderQuiz renders the prompt, the slots and the block pool.
func renderQuiz(state State, cursor cursorView, noColor bool) string {
	q := state.Question
	lines := []string{"", stylize(q.Prompt, noColor, lipgloss.Color("252")), "", "Slots:"}
	for slot, fragment := range state.Order {
		text := "____"
		if fragment != placement.Empty && fragment < len(q.Fragments) {
			text = "[" + keyLabel(fragment) + "] " + formatFragment(q.Fragments[fragment])
		}
		line := "  " + fmtInt(slot+1) + ". " + text
		if slot == cursor.Slot {
			line = stylize("> "+strings.TrimPrefix(line, "  "), noColor, colorCursor)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", "Blocks:")
	pool := pooled(state.Order, len(q.Fragments))
	if len(pool) == 0 {
		lines = append(lines, "  (all placed)")
	}
	for _, fragment := range pool {
		line := "  [" + keyLabel(fragment) + "] " + formatFragment(q.Fragments[fragment])
		if fragment == cursor.Fragment {
			line = stylize("> "+strings.TrimPrefix(line, "  "), noColor, colorCursor)
		}
		lines = append(lines, line)
	}
	if cursor.Fragment >= 0 && !slices.Contains(pool, cursor.Fragment) && cursor.Fragment < len(q.Fragments) {
		lines = append(lines, stylize("> cursor on placed block ["+keyLabel(cursor.Fragment)+"]", noColor, colorCursor))
	}
	if cursor.Holding != placement.Empty && cursor.Holding < len(q.Fragments) {
		lines = append(lines, "", stylize("Holding ["+keyLabel(cursor.Holding)+"] "+formatFragment(q.Fragments[cursor.Holding]), noColor, colorCursor))
	}
	lines = append(lines, "", renderVerdict(state, noColor))
	return strings.Join(lines, "\n")
}

func renderVerdict(state State, noColor bool) string {
	text := formatVerdict(state.Verdict, state.Quiz, state.Order)
	switch state.Verdict {
	case quiz.Correct:
		return stylize(text, noColor, colorCorrect)
	case quiz.Incorrect:
		return stylize(text, noColor, colorWrong)
	default:
		return stylize(text, noColor, colorMuted)
	}
}

// renderResult renders the final score screen.
func renderResult(state State, noColor bool) string {
	if state.Summary == nil {
		return ""
	}
	summary := *state.Summary
	lines := []string{
		"",
		stylize("Quiz complete!", noColor, colorTitle),
		quiz.FormatScore(summary.Correct, summary.Total),
		quiz.FormatFinalTime(summary.Elapsed),
		"",
		"Play Again? Press r.",
	}
	return strings.Join(lines, "\n")
}

// renderConfirm renders a yes/no dialog.
func renderConfirm(kind ConfirmKind, noColor bool) string {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	if !noColor {
		box = box.BorderForeground(colorWarn)
	}
	return "\n" + box.Render(confirmText(kind)+"\n\n[y] Yes   [n] No")
}

// renderHelp renders the instructions and full key list.
func renderHelp(input placement.Mode, keys string, noColor bool) string {
	return strings.Join([]string{"", stylize(input.Instructions(), noColor, lipgloss.Color("252")), "", keys}, "\n")
}

// renderGoodbye renders the screen shown after quitting.
func renderGoodbye(noColor bool) string {
	return stylize("Thanks for playing!", noColor, colorTitle) + "\n" + "Come back soon!"
}

// renderMessage renders a transient notice.
func renderMessage(message string, noColor bool) string {
	return "\n" + stylize(message, noColor, colorWarn)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
