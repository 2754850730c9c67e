package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"codeorder/internal/config"
	"codeorder/internal/question"
	"codeorder/internal/quiz"
	"codeorder/internal/ui/live"
	"codeorder/internal/ui/plain"
)

// playInput allows tests to override stdin for play.
var playInput io.Reader = os.Stdin

// runLiveUI is a test seam for running the Bubble Tea program.
var runLiveUI = func(ctx context.Context, ui *live.Controller, player live.Player, in io.Reader, out io.Writer) error {
	return ui.Run(ctx, player, in, out)
}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .codeorder/config.yml)")
		bankFlag := flags.String("bank", "", "Question bank file or http(s) URL")
		language := flags.String("lang", "", "Preselected language")
		difficulty := flags.String("diff", "", "Preselected difficulty")
		size := flags.Int("size", 0, "Questions per session")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain")
		inputMode := flags.String("input", "", "Placement input: auto|tap|drag")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if (*language == "") != (*difficulty == "") {
			fmt.Fprintln(stderr, "--lang and --diff must be given together")
			return ExitUsage
		}
		if *size < 0 {
			fmt.Fprintln(stderr, "--size must be positive")
			return ExitUsage
		}

		cfg, resolvedConfig, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config failed:\n%v\n", err)
			return ExitError
		}
		applyPlayOverrides(&cfg, *language, *difficulty, *size, *uiMode, *inputMode, *noColor)

		in := playInput
		if in == nil {
			in = os.Stdin
		}
		decision, err := resolveUIMode(cfg.UI.Mode, in, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		input, err := resolveInputMode(cfg.UI.Input, decision.useLive)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}

		source, err := bankSource(cfg, resolvedConfig, *bankFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitUsage
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		bank, err := loadBank(ctx, source, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Load failed: %v\n", err)
			return ExitError
		}
		selection := defaultSelection(bank, cfg.Quiz)
		if cfg.Quiz.DefaultLanguage != "" && bank.Count(selection) == 0 {
			fmt.Fprintf(stderr, "No questions for %s in %s\n", selection, source)
		}

		quizOpts := quiz.Options{
			SessionSize:     cfg.Quiz.SessionSize,
			EvaluationDelay: cfg.Quiz.EvaluationDelay(),
			AdvanceDelay:    cfg.Quiz.AdvanceDelay(),
			RetryDelay:      cfg.Quiz.RetryDelay(),
			TickInterval:    cfg.Quiz.TickInterval(),
		}

		if decision.useLive {
			ui := live.New(live.Options{
				NoColor: cfg.UI.NoColor,
				Input:   input,
				Default: selection,
			})
			quizOpts.Observer = ui
			controller := quiz.New(bank, quizOpts)
			err = runLiveUI(ctx, ui, controller, in, stdout)
			controller.Cancel()
		} else {
			printer := plain.NewPrinter(stdout, cfg.UI.NoColor)
			quizOpts.Observer = printer
			controller := quiz.New(bank, quizOpts)
			session := plain.NewSession(controller, printer, plain.Options{
				Input:   input,
				Default: selection,
				Await:   !isInputTerminal(in),
			})
			err = session.Run(ctx, in)
			controller.Cancel()
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// applyPlayOverrides lets explicit flags win over the config file.
func applyPlayOverrides(cfg *config.Config, language, difficulty string, size int, uiMode, inputMode string, noColor bool) {
	if language != "" {
		cfg.Quiz.DefaultLanguage = strings.ToLower(strings.TrimSpace(language))
		cfg.Quiz.DefaultDifficulty = strings.ToLower(strings.TrimSpace(difficulty))
	}
	if size > 0 {
		cfg.Quiz.SessionSize = size
	}
	if uiMode != "" {
		cfg.UI.Mode = uiMode
	}
	if inputMode != "" {
		cfg.UI.Input = inputMode
	}
	if noColor {
		cfg.UI.NoColor = true
	}
}

// defaultSelection uses the configured pair, or else the first selection
// with enough questions for a session.
func defaultSelection(bank *question.Bank, q config.QuizConfig) question.Selection {
	if q.DefaultLanguage != "" {
		return question.NewSelection(q.DefaultLanguage, q.DefaultDifficulty)
	}
	selections := bank.Selections()
	for _, selection := range selections {
		if bank.Count(selection) >= q.SessionSize {
			return selection
		}
	}
	if len(selections) > 0 {
		return selections[0]
	}
	return question.Selection{}
}
