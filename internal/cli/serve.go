package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"codeorder/internal/assetserver"
	"codeorder/internal/question"
)

// serveBank is a test seam for running the asset server.
var serveBank = assetserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "127.0.0.1:5000", "Address to listen on")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		bankPath := fs.Arg(0)
		if bankPath == "" {
			fmt.Fprintln(stderr, "Missing <bank.json>")
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if question.IsRemote(bankPath) {
			fmt.Fprintln(stderr, "serve needs a local bank file")
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		if _, err := os.Stat(bankPath); err != nil {
			fmt.Fprintf(stderr, "Bank not found: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cfg := assetserver.Config{
			Addr:     *addr,
			BankPath: bankPath,
		}
		fmt.Fprintf(stdout, "Serving %s at http://%s/questions.json\n", bankPath, cfg.Addr)
		if err := serveBank(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
