package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeorder/internal/config"
	"codeorder/internal/quiz"
	"codeorder/internal/vcs"
)

// sampleBankAnswer selects the bundled sample bank at the bank prompt.
const sampleBankAnswer = "sample"

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: <project root>/.codeorder/config.yml)")
		bankFlag := flags.String("bank", "", "Question bank file or http(s) URL (default: prompt)")
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

		in := initInput
		if in == nil {
			in = os.Stdin
		}
		reader := bufio.NewReader(in)

		var targetPath string
		configPathValue := strings.TrimSpace(*configPath)
		if configPathValue == "" {
			root, err := discoverProjectRoot("")
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetPath = config.ConfigPath(root)
		} else {
			abs, err := filepath.Abs(configPathValue)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetPath = abs
		}
		configDir := filepath.Dir(targetPath)

		if info, err := os.Stat(configDir); err == nil && !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: config directory %q is not a directory\n", configDir)
			return ExitError
		}
		if info, err := os.Stat(targetPath); err == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: config path %q is a directory\n", targetPath)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", targetPath)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat config file: %v\n", err)
			return ExitError
		}

		confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize codeorder config in %s?", configDir), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}

		source := strings.TrimSpace(*bankFlag)
		if source == "" {
			answer, err := promptString(reader, stdout, "Question bank (path or URL)", sampleBankAnswer)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if answer != sampleBankAnswer {
				source = answer
			}
		}

		opts := config.ScaffoldOptions{BankSource: source}
		if source != "" {
			size, err := promptCount(reader, stdout, "Questions per session", quiz.DefaultSessionSize)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			opts.SessionSize = size
		}

		if err := config.Scaffold(targetPath, opts); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", targetPath)
		if source == "" {
			fmt.Fprintf(stdout, "Wrote %s\n", filepath.Join(configDir, config.SampleBankFileName))
		}
		return ExitOK
	}
}

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

// discoverProjectRoot returns the git root, or the working directory outside a repository.
var discoverProjectRoot = func(startDir string) (string, error) {
	return vcs.ProjectRoot(context.Background(), startDir)
}
