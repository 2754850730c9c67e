package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .codeorder/config.yml)")
		bankFlag := flags.String("bank", "", "Question bank file or http(s) URL")
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

		cfg, resolvedConfig, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Config failed:\n%v\n", err)
			return ExitError
		}
		source, err := bankSource(cfg, resolvedConfig, *bankFlag)
		if err != nil {
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitUsage
		}
		bank, err := loadBank(context.Background(), source, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Load failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "%-12s %-10s %s\n", "LANGUAGE", "DIFFICULTY", "QUESTIONS")
		for _, selection := range bank.Selections() {
			count := bank.Count(selection)
			note := ""
			if count < cfg.Quiz.SessionSize {
				note = fmt.Sprintf(" (needs %d)", cfg.Quiz.SessionSize)
			}
			fmt.Fprintf(stdout, "%-12s %-10s %d%s\n", selection.Language, selection.Difficulty, count, note)
		}
		return ExitOK
	}
}
