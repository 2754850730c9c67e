package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if resolvedConfig != "" {
			fmt.Fprintln(stdout, "Config OK")
		}

		source, err := bankSource(cfg, resolvedConfig, *bankFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitUsage
		}
		bank, err := loadBank(context.Background(), source, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		total := 0
		selections := bank.Selections()
		for _, selection := range selections {
			total += bank.Count(selection)
		}
		fmt.Fprintf(stdout, "Bank OK: %d questions in %d selections\n", total, len(selections))
		return ExitOK
	}
}
