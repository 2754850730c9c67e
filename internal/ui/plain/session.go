// Package plain is a line-oriented quiz front end for pipes and dumb terminals.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"codeorder/internal/placement"
	"codeorder/internal/question"
	"codeorder/internal/quiz"
)

// Player is the part of the quiz controller the plain UI drives.
type Player interface {
	placement.Target
	Start(selection question.Selection) error
	Retry() error
	Cancel()
	Quit()
	Snapshot() quiz.Snapshot
	Bank() *question.Bank
}

// Options configures a plain session.
type Options struct {
	Input   placement.Mode
	Default question.Selection
	// Await holds placement commands until an evaluation pause is over.
	Await bool
}

// ErrUnknownCommand is returned for input that matches no command.
var ErrUnknownCommand = errors.New("unknown command")

// Session reads commands and drives a player.
type Session struct {
	player  Player
	printer *Printer
	tap     *placement.Tap
	drag    *placement.Drag
	opts    Options
}

// NewSession builds a session printing through printer.
func NewSession(player Player, printer *Printer, opts Options) *Session {
	return &Session{
		player:  player,
		printer: printer,
		tap:     placement.NewTap(player),
		drag:    placement.NewDrag(player),
		opts:    opts,
	}
}

// Run executes commands from in until quit, EOF or ctx cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.printer.Println(quiz.StartPrompt)
	s.printer.Println(`Type "help" for commands.`)
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			s.player.Quit()
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				s.player.Quit()
				return <-readErr
			}
			done, err := s.Exec(ctx, line)
			if err != nil {
				s.printer.Notice(err.Error())
			}
			if done {
				return nil
			}
		}
	}
}

// Exec runs one command line. done reports that the player quit.
func (s *Session) Exec(ctx context.Context, line string) (done bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "start":
		return false, s.start(args)
	case "tap", "place", "remove":
		if err := s.awaitSettled(ctx); err != nil {
			return false, err
		}
		return false, s.placement(name, args)
	case "retry":
		if err := s.player.Retry(); err != nil {
			return false, errors.New(quiz.FormatStartError(err))
		}
		return false, nil
	case "cancel":
		s.player.Cancel()
		s.printer.Println(quiz.StartPrompt)
		return false, nil
	case "quit", "exit":
		s.player.Quit()
		return true, nil
	case "help":
		s.printHelp()
		return false, nil
	case "show":
		s.show()
		return false, nil
	case "list":
		s.list()
		return false, nil
	default:
		return false, fmt.Errorf("%w %q (type help)", ErrUnknownCommand, name)
	}
}

func (s *Session) start(args []string) error {
	selection := s.opts.Default
	switch len(args) {
	case 0:
	case 2:
		selection = question.NewSelection(args[0], args[1])
	default:
		return errors.New("usage: start <language> <difficulty>")
	}
	if err := s.player.Start(selection); err != nil {
		return errors.New(quiz.FormatStartError(err))
	}
	return nil
}

// placement applies tap, place or remove with 1-based block and slot numbers.
func (s *Session) placement(name string, args []string) error {
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}
	var result placement.Result
	switch {
	case name == "tap" && len(numbers) == 1:
		result = s.tap.Tap(numbers[0] - 1)
	case name == "place" && len(numbers) == 1:
		result = s.player.PlaceNext(numbers[0] - 1)
	case name == "place" && len(numbers) == 2:
		s.drag.Pick(numbers[0] - 1)
		result = s.drag.DropOnSlot(numbers[1] - 1)
	case name == "remove" && len(numbers) == 1:
		s.drag.Pick(numbers[0] - 1)
		result = s.drag.DropOnPool()
	default:
		return fmt.Errorf("usage: %s", usage[name])
	}
	if result.Outcome == placement.Ignored && result.Reason != nil {
		return fmt.Errorf("%s ignored: %w", name, result.Reason)
	}
	return nil
}

// awaitSettled waits out an evaluation pause when Await is set.
func (s *Session) awaitSettled(ctx context.Context) error {
	if !s.opts.Await {
		return nil
	}
	for {
		state, changed := s.printer.current()
		if state != quiz.Evaluating {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

var usage = map[string]string{
	"tap":    "tap <block>",
	"place":  "place <block> [slot]",
	"remove": "remove <block>",
}

func (s *Session) printHelp() {
	lines := []string{
		s.opts.Input.Instructions(),
		"",
		"Commands:",
		"  start [language difficulty]  begin a quiz",
		"  list                         show languages and difficulties",
		"  tap <block>                  toggle a block in or out of the slots",
		"  place <block> [slot]         put a block in a slot",
		"  remove <block>               put a block back in the pool",
		"  show                         print the current question",
		"  retry                        play again with the same selection",
		"  cancel                       go back to the start",
		"  quit                         leave the game",
	}
	s.printer.Println(strings.Join(lines, "\n"))
}

func (s *Session) show() {
	snap := s.player.Snapshot()
	switch {
	case snap.State == quiz.Complete && snap.Summary != nil:
		s.printer.Println(quiz.FormatScore(snap.Summary.Correct, snap.Summary.Total) + " | " + quiz.FormatFinalTime(snap.Summary.Elapsed))
	case snap.HasQuestion:
		var b strings.Builder
		b.WriteString(quiz.FormatProgress(snap.QuestionIndex, snap.Total) + " | " + quiz.FormatTicker(int(snap.Elapsed.Seconds())) + "\n")
		b.WriteString(snap.Question.Prompt + "\n")
		for _, fragment := range snap.Pool {
			fmt.Fprintf(&b, "  [%d] %s\n", fragment+1, snap.Question.Fragments[fragment])
		}
		b.WriteString("Slots: " + formatOrder(snap.Order))
		s.printer.Println(b.String())
	default:
		s.printer.Println(quiz.StartPrompt)
	}
}

func (s *Session) list() {
	bank := s.player.Bank()
	if bank == nil {
		s.printer.Notice(quiz.FormatStartError(quiz.ErrBankNotLoaded))
		return
	}
	for _, selection := range bank.Selections() {
		s.printer.Println(fmt.Sprintf("%s %s (%d questions)", selection.Language, selection.Difficulty, bank.Count(selection)))
	}
}

func parseNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("expected a positive number, got %q", arg)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
